package readstore

import (
	"context"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUser(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
}

func NewUserReadStore(queries UserReadQueries) *UserReadStore {
	return &UserReadStore{
		queries: queries,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUser(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindByUsername(ctx context.Context, db sqlc.DBTX, username string) (*queries.UserView, error) {
	row, err := r.queries.GetUserByUsername(ctx, db, username)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, db sqlc.DBTX, page queries.Page) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, db, sqlc.ListUsersParams{
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:       row.ID,
		Username: row.Username,
	}
}
