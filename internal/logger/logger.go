package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the process-wide logger. Safe to call more than once;
// the last configuration wins.
func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}

	var out zerolog.Logger
	if cfg.App.Environment == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		out = zerolog.New(os.Stderr)
	}

	log = out.Level(level).With().
		Timestamp().
		Str("service", "contaduria-familiar").
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
