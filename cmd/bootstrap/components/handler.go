package components

import (
	"mansion-pos/internal/handler"
	"mansion-pos/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStayHandler,
		api.NewGuestHandler,
		api.NewRoomHandler,
		api.NewLedgerHandler,
		api.NewReportHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
