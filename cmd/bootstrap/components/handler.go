package components

import (
	"hotel-ordering/internal/handler"
	"hotel-ordering/internal/handler/api"
	"hotel-ordering/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
