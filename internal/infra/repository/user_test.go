//go:build unit

package repository_test

import (
	"context"
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

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*repositorymock.MockUserWriteQueries, *mockDBTX, *repository.UserRepository) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		return mockQueries, mockDB, repository.NewUserRepository(mockQueries, mockDB)
	}

	t.Run("find by username", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		mockQueries.EXPECT().GetUserByUsername(ctx, mockDB, "admin").
			Return(builder.NewUserBuilder().WithID(1).BuildInfra(), nil)

		u, err := repo.FindByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID())
		assert.Equal(t, "hashed_password", u.PasswordHash())
	})

	t.Run("find by username not found", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		mockQueries.EXPECT().GetUserByUsername(ctx, mockDB, "ghost").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := repo.FindByUsername(ctx, "ghost")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("create duplicate username", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateUser(ctx, mockDB, sqlc.CreateUserParams{
			Username:     "admin",
			PasswordHash: "hashed_password",
		}).Return(sqlc.Users{}, &pgconn.PgError{Code: "23505"})

		_, err = repo.Create(ctx, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("update and delete", func(t *testing.T) {
		mockQueries, mockDB, repo := setup(t)
		u, err := builder.NewUserBuilder().WithID(2).WithUsername("alice").BuildDomain()
		require.NoError(t, err)

		row := builder.NewUserBuilder().WithID(2).WithUsername("alice").BuildInfra()
		mockQueries.EXPECT().UpdateUser(ctx, mockDB, sqlc.UpdateUserParams{
			ID:           2,
			Username:     "alice",
			PasswordHash: "hashed_password",
		}).Return(row, nil)
		mockQueries.EXPECT().DeleteUser(ctx, mockDB, int64(2)).Return(row, nil)

		updated, err := repo.Update(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, "alice", updated.Username().String())

		removed, err := repo.Delete(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed.ID())
	})
}
