package queries

import (
	"context"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"
)

type RateAdjustmentReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*RateAdjustmentView, error)
	List(ctx context.Context, db sqlc.DBTX, page Page) ([]*RateAdjustmentView, error)
	// ListByRoomType and ListUpTo order by effective_date DESC, id DESC
	ListByRoomType(ctx context.Context, db sqlc.DBTX, roomTypeID int64) ([]*RateAdjustmentView, error)
	// limit <= 0 means no limit
	ListUpTo(ctx context.Context, db sqlc.DBTX, roomTypeID int64, upTo dateonly.Date, limit int32) ([]*RateAdjustmentView, error)
}

type RateAdjustmentQueries interface {
	GetByID(ctx context.Context, id int64) (*RateAdjustmentView, error)
	List(ctx context.Context, page Page) ([]*RateAdjustmentView, error)
	ListByRoomType(ctx context.Context, roomTypeID int64) ([]*RateAdjustmentView, error)
}

type rateAdjustmentQueriesImpl struct {
	uow         shared.UnitOfWork
	roomTypes   RoomTypeReadStore
	adjustments RateAdjustmentReadStore
}

func NewRateAdjustmentQueries(uow shared.UnitOfWork, roomTypes RoomTypeReadStore, adjustments RateAdjustmentReadStore) RateAdjustmentQueries {
	return &rateAdjustmentQueriesImpl{
		uow:         uow,
		roomTypes:   roomTypes,
		adjustments: adjustments,
	}
}

func (q *rateAdjustmentQueriesImpl) GetByID(ctx context.Context, id int64) (*RateAdjustmentView, error) {
	var view *RateAdjustmentView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.adjustments.FindByID(ctx, db, id)
		if err != nil {
			return mapNotFound(err, errs.ErrRateAdjustmentNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *rateAdjustmentQueriesImpl) List(ctx context.Context, page Page) ([]*RateAdjustmentView, error) {
	var views []*RateAdjustmentView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.adjustments.List(ctx, db, page)
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

func (q *rateAdjustmentQueriesImpl) ListByRoomType(ctx context.Context, roomTypeID int64) ([]*RateAdjustmentView, error) {
	var views []*RateAdjustmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.roomTypes.FindByID(ctx, db, roomTypeID); err != nil {
			return mapNotFound(err, errs.ErrRoomTypeNotFound)
		}
		v, err := q.adjustments.ListByRoomType(ctx, db, roomTypeID)
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
