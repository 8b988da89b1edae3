//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestFindByUsername(t *testing.T) {
	testUser := builder.NewUserBuilder().WithID(1).BuildInfra()

	tests := []struct {
		name       string
		username   string
		mockReturn sqlc.Users
		mockError  error
		wantError  bool
	}{
		{
			name:       "success",
			username:   testUser.Username,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			username:   "nobody",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			username:   testUser.Username,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByUsername", mock.Anything, mock.Anything, tt.username).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries)

			view, err := readStore.FindByUsername(context.Background(), nil, tt.username)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, view.Username)
				assert.Equal(t, int64(1), view.ID)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
