package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newAccountRepository,
		newTransactionRepository,
		newCategoryRepository,
		newSubscriptionRepository,
		newSavingRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newAccountRepository(db *gorm.DB) *infrastructure.AccountRepository {
	return &infrastructure.AccountRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newSubscriptionRepository(db *gorm.DB) *infrastructure.SubscriptionRepository {
	return &infrastructure.SubscriptionRepository{DB: db}
}

func newSavingRepository(db *gorm.DB) *infrastructure.SavingRepository {
	return &infrastructure.SavingRepository{DB: db}
}
