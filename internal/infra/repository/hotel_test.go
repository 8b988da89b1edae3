//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/tests/common/builder"
	repositorymock "hotel-admin/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Hotel Tests
// =============================================================================

func TestHotelRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockHotelWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: hotel created with generated id",
			setupMock: func(mock *repositorymock.MockHotelWriteQueries, db sqlc.DBTX) {
				row := builder.NewHotelBuilder().WithID(7).BuildInfra()
				mock.EXPECT().CreateHotel(ctx, db, sqlc.CreateHotelParams{
					Name:     "Grand Budapest",
					Location: "Zubrowka",
					IsActive: true,
				}).Return(row, nil)
			},
		},
		{
			name: "error: duplicate hotel name",
			setupMock: func(mock *repositorymock.MockHotelWriteQueries, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateHotel(ctx, db, gomock.Any()).Return(sqlc.Hotels{}, dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockHotelWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateHotel(ctx, db, gomock.Any()).Return(sqlc.Hotels{}, errors.New("database connection error"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewHotelRepository(mockQueries, mockDB)

			h, err := builder.NewHotelBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			created, actualError := repo.Create(ctx, h)

			if tc.expectKind != "" {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, int64(7), created.ID())
			assert.Equal(t, "Grand Budapest", created.Name().String())
		})
	}
}

// =============================================================================
// Find / Update / Delete Hotel Tests
// =============================================================================

func TestHotelRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetHotel(ctx, mockDB, int64(3)).
			Return(builder.NewHotelBuilder().WithID(3).AsInactive().BuildInfra(), nil)

		h, err := repo.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), h.ID())
		assert.False(t, h.IsActive())
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetHotel(ctx, mockDB, int64(99)).Return(sqlc.Hotels{}, pgx.ErrNoRows)

		h, err := repo.FindByID(ctx, 99)
		assert.Nil(t, h)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("stored row fails domain validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetHotel(ctx, mockDB, int64(4)).
			Return(builder.NewHotelBuilder().WithID(4).WithName("").BuildInfra(), nil)

		_, err := repo.FindByID(ctx, 4)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestHotelRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewHotelRepository(mockQueries, mockDB)

	h, err := builder.NewHotelBuilder().WithID(5).WithLocation("Lutz").BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().UpdateHotel(ctx, mockDB, sqlc.UpdateHotelParams{
		ID:       5,
		Name:     "Grand Budapest",
		Location: "Lutz",
		IsActive: true,
	}).Return(builder.NewHotelBuilder().WithID(5).WithLocation("Lutz").BuildInfra(), nil)

	updated, err := repo.Update(ctx, h)
	require.NoError(t, err)
	assert.Equal(t, "Lutz", updated.Location().String())
}

func TestHotelRepository_DeleteAndCount(t *testing.T) {
	ctx := context.Background()

	t.Run("delete returns the removed hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		mockQueries.EXPECT().DeleteHotel(ctx, mockDB, int64(8)).Return(builder.NewHotelBuilder().WithID(8).BuildInfra(), nil)

		removed, err := repo.Delete(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), removed.ID())
	})

	t.Run("delete blocked by referencing room types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		fk := &pgconn.PgError{Code: "23503", Message: "update or delete on table \"hotels\" violates foreign key constraint"}
		mockQueries.EXPECT().DeleteHotel(ctx, mockDB, int64(8)).Return(sqlc.Hotels{}, fk)

		_, err := repo.Delete(ctx, 8)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("count room types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockHotelWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewHotelRepository(mockQueries, mockDB)

		mockQueries.EXPECT().CountRoomTypesByHotel(ctx, mockDB, int64(8)).Return(int64(2), nil)

		n, err := repo.CountRoomTypes(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
