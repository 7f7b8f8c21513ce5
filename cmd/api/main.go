package main

import (
	appfx "github.com/sergioleandroramirez97/contaduria-familiar/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
