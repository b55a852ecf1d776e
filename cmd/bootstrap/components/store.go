package components

import (
	"resbook/internal/infra/locks"
	"resbook/internal/infra/memstore"
	"resbook/internal/usecase/commands"
	"resbook/internal/usecase/queries"

	"go.uber.org/fx"
)

// StoreModule provides the in-memory catalog, reservation store and the
// per-resource lock registry shared by the write and read sides.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			memstore.NewCatalog,
			fx.As(new(commands.Catalog)),
			fx.As(new(queries.CatalogReader)),
		),
		fx.Annotate(
			memstore.NewReservationStore,
			fx.As(new(commands.ReservationStore)),
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			locks.NewRegistry,
			fx.As(new(commands.LockRegistry)),
		),
	),
)
