package components

import (
	"volunteer-hub/internal/handler"
	"volunteer-hub/internal/handler/api"
	"volunteer-hub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOpportunityHandler,
		api.NewApplicationHandler,
		api.NewRewardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
