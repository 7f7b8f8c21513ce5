package infrastructure

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/logger"
)

// translateNotFound maps gorm's not-found onto the storage-agnostic sentinel.
// Any other error passes through untouched so a failing store is never
// mistaken for an absent row.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrRecordNotFound
	}
	return err
}

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Error al conectar con la base de datos")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Error al obtener la instancia de la base de datos")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexión con la base de datos establecida")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Ejecutando migraciones...")

	entities := []interface{}{
		&account.Account{},
		&transaction.Transaction{},
		&category.Category{},
		&subscription.Subscription{},
		&saving.SavingGoal{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", fmt.Sprintf("%T", entity)).
				Msg("Error al migrar la entidad")
			return err
		}
	}

	logger.Info().Msg("Migraciones ejecutadas con éxito")
	return nil
}
