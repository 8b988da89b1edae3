package queries

import (
	"context"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"
)

type HotelReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*HotelView, error)
	List(ctx context.Context, db sqlc.DBTX, page Page) ([]*HotelView, error)
}

type HotelQueries interface {
	GetByID(ctx context.Context, id int64) (*HotelView, error)
	List(ctx context.Context, page Page) ([]*HotelView, error)
}

type hotelQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore HotelReadStore
}

func NewHotelQueries(uow shared.UnitOfWork, readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id int64) (*HotelView, error) {
	var view *HotelView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.readStore.FindByID(ctx, db, id)
		if err != nil {
			return mapNotFound(err, errs.ErrHotelNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, page Page) ([]*HotelView, error) {
	var views []*HotelView
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
