package shared

import (
	"context"

	"hotel-admin/internal/domain/hotel"
	"hotel-admin/internal/domain/rate"
	"hotel-admin/internal/domain/roomtype"
	"hotel-admin/internal/domain/user"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Hotels() HotelRepository
	RoomTypes() RoomTypeRepository
	RateAdjustments() RateAdjustmentRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

// Write-side repositories return reconstructed aggregates so partial updates
// can be merged and re-validated in the domain before being written back.
type HotelRepository interface {
	FindByID(ctx context.Context, id int64) (*hotel.Hotel, error)
	Create(ctx context.Context, h *hotel.Hotel) (*hotel.Hotel, error)
	Update(ctx context.Context, h *hotel.Hotel) (*hotel.Hotel, error)
	Delete(ctx context.Context, id int64) (*hotel.Hotel, error)
	CountRoomTypes(ctx context.Context, id int64) (int64, error)
}

type RoomTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*roomtype.RoomType, error)
	Create(ctx context.Context, rt *roomtype.RoomType) (*roomtype.RoomType, error)
	Update(ctx context.Context, rt *roomtype.RoomType) (*roomtype.RoomType, error)
	Delete(ctx context.Context, id int64) (*roomtype.RoomType, error)
}

type RateAdjustmentRepository interface {
	FindByID(ctx context.Context, id int64) (*rate.Adjustment, error)
	Create(ctx context.Context, adj *rate.Adjustment) (*rate.Adjustment, error)
	Update(ctx context.Context, adj *rate.Adjustment) (*rate.Adjustment, error)
	Delete(ctx context.Context, id int64) (*rate.Adjustment, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) (*user.User, error)
	Delete(ctx context.Context, id int64) (*user.User, error)
}
