package fx

import "go.uber.org/fx"

// AppModule agrupa todos los módulos de la aplicación.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	ServerModule,
)
