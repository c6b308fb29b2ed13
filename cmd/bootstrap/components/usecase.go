package components

import (
	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	stay.NewFeePolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewStayUseCase,
		commands.NewGuestUseCase,
		commands.NewRoomUseCase,
		commands.NewDepositUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGuestQueries,
		queries.NewRoomQueries,
		queries.NewStayQueries,
		queries.NewLedgerQueries,
		queries.NewReportQueries,
	),
)
