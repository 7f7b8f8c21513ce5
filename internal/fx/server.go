package fx

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/logger"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/middleware"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/routes"
)

// ServerModule provee la configuración del servidor HTTP.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	globalRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(globalRateLimiter))
	api.Use(middleware.IdentityMiddleware(jwtSvc))
	api.Use(middleware.RateLimitByUser())
	{
		accounts := api.Group("/accounts")
		{
			accounts.POST("", handler.CreateAccount)
			accounts.GET("", handler.ListAccounts)
			accounts.GET("/balance", handler.GetTotalBalance)
			accounts.GET("/:id", handler.GetAccount)
			accounts.PATCH("/:id", handler.UpdateAccount)
			accounts.DELETE("/:id", handler.DeleteAccount)
			accounts.POST("/:id/deposit", handler.DepositToAccount)
		}

		transactions := api.Group("/transactions")
		{
			transactions.POST("", handler.CreateTransaction)
			transactions.GET("", handler.GetTransactions)
			transactions.GET("/:id", handler.GetTransaction)
			transactions.PATCH("/:id", handler.UpdateTransaction)
			transactions.DELETE("/:id", handler.DeleteTransaction)
		}

		categories := api.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.GET("", handler.ListCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		services := api.Group("/services")
		{
			services.POST("", handler.CreateSubscription)
			services.GET("", handler.ListSubscriptions)
			services.GET("/:id", handler.GetSubscription)
			services.PATCH("/:id", handler.UpdateSubscription)
			services.DELETE("/:id", handler.DeleteSubscription)
		}

		savings := api.Group("/savings")
		{
			savings.POST("", handler.CreateSavingGoal)
			savings.GET("", handler.ListSavingGoals)
			savings.GET("/:id", handler.GetSavingGoal)
			savings.PATCH("/:id", handler.UpdateSavingGoal)
			savings.DELETE("/:id", handler.DeleteSavingGoal)
			savings.POST("/:id/deposit", handler.DepositToSavingGoal)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Error al iniciar el servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor deteniéndose...")
			return nil
		},
	})
}
