//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/tests/common/builder"
	repositorymock "hotel-admin/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRateAdjustmentRepository(t *testing.T) {
	ctx := context.Background()
	effective := dateonly.New(2024, time.July, 1)

	setup := func(t *testing.T) (*repositorymock.MockRateAdjustmentWriteQueries, *mockDBTX, *repository.RateAdjustmentRepository) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRateAdjustmentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		return mockQueries, mockDB, repository.NewRateAdjustmentRepository(mockQueries, mockDB)
	}

	t.Run("create converts the effective date", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		adj, err := builder.NewRateAdjustmentBuilder().WithEffectiveDate(effective).WithAmount(-20).BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateRateAdjustment(ctx, mockDB, sqlc.CreateRateAdjustmentParams{
			RoomTypeID:       1,
			AdjustmentAmount: -20,
			EffectiveDate:    pgtype.Date{Time: effective.Time(), Valid: true},
			Reason:           "Summer season",
		}).Return(builder.NewRateAdjustmentBuilder().WithID(9).WithEffectiveDate(effective).WithAmount(-20).BuildInfra(), nil)

		created, err := repo.Create(ctx, adj)
		require.NoError(t, err)
		assert.Equal(t, int64(9), created.ID())
		assert.True(t, created.EffectiveDate().Equal(effective))
		assert.Equal(t, -20.0, created.Amount())
	})

	t.Run("stored row with null date is a db failure", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		row := builder.NewRateAdjustmentBuilder().WithID(2).BuildInfra()
		row.EffectiveDate = pgtype.Date{}
		mockQueries.EXPECT().GetRateAdjustment(ctx, mockDB, int64(2)).Return(row, nil)

		_, err := repo.FindByID(ctx, 2)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("find missing adjustment", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		mockQueries.EXPECT().GetRateAdjustment(ctx, mockDB, int64(3)).Return(sqlc.RateAdjustments{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, 3)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("update and delete", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		adj, err := builder.NewRateAdjustmentBuilder().WithID(4).WithReason("Event").BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().UpdateRateAdjustment(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateRateAdjustmentParams) (sqlc.RateAdjustments, error) {
				assert.Equal(t, int64(4), arg.ID)
				assert.Equal(t, "Event", arg.Reason)
				return builder.NewRateAdjustmentBuilder().WithID(4).WithReason("Event").BuildInfra(), nil
			})
		mockQueries.EXPECT().DeleteRateAdjustment(ctx, mockDB, int64(4)).Return(sqlc.RateAdjustments{}, errors.New("connection reset"))

		updated, err := repo.Update(ctx, adj)
		require.NoError(t, err)
		assert.Equal(t, "Event", updated.Reason())

		_, err = repo.Delete(ctx, 4)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
