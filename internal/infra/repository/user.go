package repository

import (
	"context"

	"hotel-admin/internal/domain/user"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository/converter"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (sqlc.Users, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.GetUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return toUser(row)
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return toUser(row)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	row, err := r.queries.UpdateUser(ctx, r.db, converter.UserToUpdateParams(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	return toUser(row)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (*user.User, error) {
	row, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete user", err)
	}
	return toUser(row)
}

func toUser(row sqlc.Users) (*user.User, error) {
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user is invalid", err, infra.KindDBFailure)
	}
	return u, nil
}
