package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/middleware"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newGlobalRateLimiter,
	),
)

func newHandler(
	accountSvc *account.Service,
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	subscriptionSvc *subscription.Service,
	savingSvc *saving.Service,
) *routes.Handler {
	return &routes.Handler{
		AccountService:      accountSvc,
		TransactionService:  transactionSvc,
		CategoryService:     categorySvc,
		SubscriptionService: subscriptionSvc,
		SavingService:       savingSvc,
	}
}

func newGlobalRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(300, time.Minute)
}
