package queries

import (
	"context"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"
)

type UserReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*UserView, error)
	FindByUsername(ctx context.Context, db sqlc.DBTX, username string) (*UserView, error)
	List(ctx context.Context, db sqlc.DBTX, page Page) ([]*UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	GetByUsername(ctx context.Context, username string) (*UserView, error)
	List(ctx context.Context, page Page) ([]*UserView, error)
}

type userQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore UserReadStore
}

func NewUserQueries(uow shared.UnitOfWork, readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	var view *UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindByID(ctx, db, id)
		if err != nil {
			return mapNotFound(err, errs.ErrUserNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) GetByUsername(ctx context.Context, username string) (*UserView, error) {
	var view *UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindByUsername(ctx, db, username)
		if err != nil {
			return mapNotFound(err, errs.ErrUserNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) List(ctx context.Context, page Page) ([]*UserView, error) {
	var views []*UserView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.List(ctx, db, page)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		views = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
