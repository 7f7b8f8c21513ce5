package fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/logger"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se pudo cargar .env del directorio actual: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
