package components

import (
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/config"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/commands"
	"hotel-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(NewClock, fx.As(new(clock.Clock))),
)

func NewClock(cfg config.Config) (*clock.RealClock, error) {
	return clock.NewRealClock(cfg.Server.BusinessTimeZone)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewHotelCommands,
		commands.NewRoomTypeCommands,
		commands.NewRateAdjustmentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHotelQueries,
		queries.NewRoomTypeQueries,
		queries.NewRateAdjustmentQueries,
		queries.NewEffectiveRateQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
