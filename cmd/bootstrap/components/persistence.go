package components

import (
	"hotel-ordering/internal/infra/readstore"
	"hotel-ordering/internal/infra/repository"
	"hotel-ordering/internal/usecase/commands"
	"hotel-ordering/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repository.NewSequenceRepository,
			fx.As(new(commands.SequenceGenerator)),
		),
		// Read side
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(commands.MenuReader)),
		),
		fx.Annotate(
			readstore.NewOwnerReadStore,
			fx.As(new(commands.OwnerReader)),
		),
	),
)
