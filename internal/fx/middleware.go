package fx

import (
	"go.uber.org/fx"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) *middleware.JwtService {
	return middleware.NewJwtService(cfg)
}
