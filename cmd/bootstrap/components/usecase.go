package components

import (
	"resbook/internal/pkg/clock"
	"resbook/internal/pkg/ident"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystemClock,
	ident.NewUUIDGenerator,
	commands.NewDefaultStrategies,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewResourceCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewResourceQueries,
		queries.NewReservationQueries,
	),
)
