package components

import (
	"venueserv/internal/handler"
	"venueserv/internal/handler/api"
	"venueserv/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewVenueHandler,
		api.NewOwnerHandler,
		api.NewPaymentWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
