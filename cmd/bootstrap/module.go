package bootstrap

import (
	"resbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	NotifierModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
