//go:build unit

package uowtest

import (
	"context"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/shared"
	sharedmock "hotel-admin/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Passthrough makes every unit-of-work entry point invoke its callback
// directly with the supplied tx or db.
func Passthrough(uow *sharedmock.MockUnitOfWork, tx shared.Tx, db sqlc.DBTX) {
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
			return fn(ctx, db)
		}).AnyTimes()
	uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
			return fn(ctx, db)
		}).AnyTimes()
}

// Repositories wires a mock transaction to the given mock repositories.
type Repositories struct {
	Tx              *sharedmock.MockTx
	Hotels          *sharedmock.MockHotelRepository
	RoomTypes       *sharedmock.MockRoomTypeRepository
	RateAdjustments *sharedmock.MockRateAdjustmentRepository
	Users           *sharedmock.MockUserRepository
}

func NewRepositories(ctrl *gomock.Controller) *Repositories {
	r := &Repositories{
		Tx:              sharedmock.NewMockTx(ctrl),
		Hotels:          sharedmock.NewMockHotelRepository(ctrl),
		RoomTypes:       sharedmock.NewMockRoomTypeRepository(ctrl),
		RateAdjustments: sharedmock.NewMockRateAdjustmentRepository(ctrl),
		Users:           sharedmock.NewMockUserRepository(ctrl),
	}
	r.Tx.EXPECT().Hotels().Return(r.Hotels).AnyTimes()
	r.Tx.EXPECT().RoomTypes().Return(r.RoomTypes).AnyTimes()
	r.Tx.EXPECT().RateAdjustments().Return(r.RateAdjustments).AnyTimes()
	r.Tx.EXPECT().Users().Return(r.Users).AnyTimes()
	return r
}
