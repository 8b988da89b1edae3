package components

import (
	"hotel-admin/internal/handler"
	"hotel-admin/internal/handler/api"
	"hotel-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewHotelHandler,
		api.NewRoomTypeHandler,
		api.NewRateAdjustmentHandler,
		middleware.NewAuthMiddleware,
		middleware.NewLoginRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)
