//go:build unit

package readstore

import (
	"context"
	"testing"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
	"hotel-admin/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockHotelReadQueries struct {
	mock.Mock
}

func (m *MockHotelReadQueries) GetHotel(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Hotels, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Hotels), args.Error(1)
}

func (m *MockHotelReadQueries) ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Hotels), args.Error(1)
}

func TestHotelReadStore_FindByID(t *testing.T) {
	tests := []struct {
		name      string
		mockRow   sqlc.Hotels
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name:    "success",
			mockRow: builder.NewHotelBuilder().WithID(1).BuildInfra(),
		},
		{
			name:      "hotel not found",
			mockRow:   sqlc.Hotels{},
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockRow:   sqlc.Hotels{},
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockHotelReadQueries)
			mockQueries.On("GetHotel", mock.Anything, mock.Anything, int64(1)).Return(tt.mockRow, tt.mockError)

			store := NewHotelReadStore(mockQueries)
			view, err := store.FindByID(context.Background(), nil, 1)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, &queries.HotelView{ID: 1, Name: "Grand Budapest", Location: "Zubrowka", IsActive: true}, view)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestHotelReadStore_List(t *testing.T) {
	mockQueries := new(MockHotelReadQueries)
	rows := []sqlc.Hotels{
		builder.NewHotelBuilder().WithID(1).BuildInfra(),
		builder.NewHotelBuilder().WithID(2).WithName("Overlook").BuildInfra(),
	}
	mockQueries.On("ListHotels", mock.Anything, mock.Anything, sqlc.ListHotelsParams{Limit: 10, Offset: 5}).Return(rows, nil)

	store := NewHotelReadStore(mockQueries)
	views, err := store.List(context.Background(), nil, queries.Page{Skip: 5, Limit: 10})

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Overlook", views[1].Name)
	mockQueries.AssertExpectations(t)
}

func TestHotelReadStore_ListEmpty(t *testing.T) {
	mockQueries := new(MockHotelReadQueries)
	mockQueries.On("ListHotels", mock.Anything, mock.Anything, mock.Anything).Return([]sqlc.Hotels{}, nil)

	views, err := NewHotelReadStore(mockQueries).List(context.Background(), nil, queries.DefaultPage())

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
