package components

import (
	"resbook/internal/handler"
	"resbook/internal/handler/api"
	"resbook/internal/handler/dto/request"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(
		request.RegisterValidations,
		handler.NewRouter,
	),
)
