//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/tests/common/builder"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateAdjustmentReadQueries struct {
	mock.Mock
}

func (m *MockRateAdjustmentReadQueries) GetRateAdjustment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RateAdjustments, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.RateAdjustments), args.Error(1)
}

func (m *MockRateAdjustmentReadQueries) ListRateAdjustments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRateAdjustmentsParams) ([]sqlc.RateAdjustments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.RateAdjustments), args.Error(1)
}

func (m *MockRateAdjustmentReadQueries) ListRateAdjustmentsByRoomType(ctx context.Context, db sqlc.DBTX, roomTypeID int64) ([]sqlc.RateAdjustments, error) {
	args := m.Called(ctx, db, roomTypeID)
	return args.Get(0).([]sqlc.RateAdjustments), args.Error(1)
}

func (m *MockRateAdjustmentReadQueries) ListRateAdjustmentsUpTo(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRateAdjustmentsUpToParams) ([]sqlc.RateAdjustments, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.RateAdjustments), args.Error(1)
}

func TestRateAdjustmentReadStore_ListUpTo(t *testing.T) {
	upTo := dateonly.New(2024, time.June, 15)
	rows := []sqlc.RateAdjustments{
		builder.NewRateAdjustmentBuilder().WithID(2).WithEffectiveDate(upTo).BuildInfra(),
		builder.NewRateAdjustmentBuilder().WithID(1).WithEffectiveDate(upTo.AddDays(-7)).BuildInfra(),
	}

	mockQueries := new(MockRateAdjustmentReadQueries)
	mockQueries.On("ListRateAdjustmentsUpTo", mock.Anything, mock.Anything, sqlc.ListRateAdjustmentsUpToParams{
		RoomTypeID:    1,
		EffectiveDate: pgtype.Date{Time: upTo.Time(), Valid: true},
		RowLimit:      pgtype.Int4{},
	}).Return(rows, nil)

	views, err := NewRateAdjustmentReadStore(mockQueries).ListUpTo(context.Background(), nil, 1, upTo, 0)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
	assert.Equal(t, "2024-06-08", views[1].EffectiveDate.String())
	mockQueries.AssertExpectations(t)
}

func TestRateAdjustmentReadStore_ListUpToWithLimit(t *testing.T) {
	upTo := dateonly.New(2024, time.June, 15)
	row := builder.NewRateAdjustmentBuilder().WithID(2).WithEffectiveDate(upTo).BuildInfra()

	mockQueries := new(MockRateAdjustmentReadQueries)
	mockQueries.On("ListRateAdjustmentsUpTo", mock.Anything, mock.Anything, sqlc.ListRateAdjustmentsUpToParams{
		RoomTypeID:    1,
		EffectiveDate: pgtype.Date{Time: upTo.Time(), Valid: true},
		RowLimit:      pgtype.Int4{Int32: 1, Valid: true},
	}).Return([]sqlc.RateAdjustments{row}, nil)

	views, err := NewRateAdjustmentReadStore(mockQueries).ListUpTo(context.Background(), nil, 1, upTo, 1)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), views[0].ID)
	mockQueries.AssertExpectations(t)
}

func TestRateAdjustmentReadStore_InvalidStoredDate(t *testing.T) {
	row := builder.NewRateAdjustmentBuilder().WithID(3).BuildInfra()
	row.EffectiveDate = pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}

	mockQueries := new(MockRateAdjustmentReadQueries)
	mockQueries.On("ListRateAdjustmentsByRoomType", mock.Anything, mock.Anything, int64(1)).Return([]sqlc.RateAdjustments{row}, nil)

	views, err := NewRateAdjustmentReadStore(mockQueries).ListByRoomType(context.Background(), nil, 1)

	assert.Nil(t, views)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

func TestRateAdjustmentReadStore_FindByID(t *testing.T) {
	mockQueries := new(MockRateAdjustmentReadQueries)
	mockQueries.On("GetRateAdjustment", mock.Anything, mock.Anything, int64(5)).
		Return(builder.NewRateAdjustmentBuilder().WithID(5).WithAmount(-12.5).BuildInfra(), nil)

	view, err := NewRateAdjustmentReadStore(mockQueries).FindByID(context.Background(), nil, 5)

	require.NoError(t, err)
	assert.Equal(t, -12.5, view.AdjustmentAmount)
	assert.Equal(t, "Summer season", view.Reason)
}
