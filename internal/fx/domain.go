package fx

import (
	"go.uber.org/fx"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/infrastructure"
)

// DomainModule provee todos los services del dominio.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAccountService,
		newCategoryService,
		newTransactionService,
		newSubscriptionService,
		newSavingService,
	),
)

func newAccountService(repo *infrastructure.AccountRepository) *account.Service {
	return account.NewService(repo)
}

func newCategoryService(
	repo *infrastructure.CategoryRepository,
	transactionRepo *infrastructure.TransactionRepository,
) *category.Service {
	return category.NewService(repo, transactionRepo)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	accountSvc *account.Service,
	categorySvc *category.Service,
) *transaction.Service {
	return transaction.NewService(repo, accountSvc, categorySvc)
}

func newSubscriptionService(repo *infrastructure.SubscriptionRepository) *subscription.Service {
	return subscription.NewService(repo)
}

func newSavingService(repo *infrastructure.SavingRepository) *saving.Service {
	return saving.NewService(repo)
}
