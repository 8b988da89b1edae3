package components

import (
	"hotel-admin/internal/infra/readstore"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/infra/uow"
	"hotel-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work, so only
// the read stores and the unit of work itself live in the graph.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hotel
		fx.Annotate(
			func(q *sqlc.Queries) *readstore.HotelReadStore { return readstore.NewHotelReadStore(q) },
			fx.As(new(queries.HotelReadStore)),
		),
		// RoomType
		fx.Annotate(
			func(q *sqlc.Queries) *readstore.RoomTypeReadStore { return readstore.NewRoomTypeReadStore(q) },
			fx.As(new(queries.RoomTypeReadStore)),
		),
		// RateAdjustment
		fx.Annotate(
			func(q *sqlc.Queries) *readstore.RateAdjustmentReadStore { return readstore.NewRateAdjustmentReadStore(q) },
			fx.As(new(queries.RateAdjustmentReadStore)),
		),
		// User
		fx.Annotate(
			func(q *sqlc.Queries) *readstore.UserReadStore { return readstore.NewUserReadStore(q) },
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}
