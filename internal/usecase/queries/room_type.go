package queries

import (
	"context"

	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"
)

type RoomTypeReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*RoomTypeView, error)
	List(ctx context.Context, db sqlc.DBTX, page Page) ([]*RoomTypeView, error)
	ListByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) ([]*RoomTypeView, error)
}

type RoomTypeQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomTypeView, error)
	List(ctx context.Context, page Page) ([]*RoomTypeView, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]*RoomTypeView, error)
}

type roomTypeQueriesImpl struct {
	uow       shared.UnitOfWork
	hotels    HotelReadStore
	roomTypes RoomTypeReadStore
}

func NewRoomTypeQueries(uow shared.UnitOfWork, hotels HotelReadStore, roomTypes RoomTypeReadStore) RoomTypeQueries {
	return &roomTypeQueriesImpl{
		uow:       uow,
		hotels:    hotels,
		roomTypes: roomTypes,
	}
}

func (q *roomTypeQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomTypeView, error) {
	var view *RoomTypeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.roomTypes.FindByID(ctx, db, id)
		if err != nil {
			return mapNotFound(err, errs.ErrRoomTypeNotFound)
		}
		view = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *roomTypeQueriesImpl) List(ctx context.Context, page Page) ([]*RoomTypeView, error) {
	var views []*RoomTypeView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.roomTypes.List(ctx, db, page)
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

// ListByHotel distinguishes an unknown hotel from a hotel without room types.
func (q *roomTypeQueriesImpl) ListByHotel(ctx context.Context, hotelID int64) ([]*RoomTypeView, error) {
	var views []*RoomTypeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.hotels.FindByID(ctx, db, hotelID); err != nil {
			return mapNotFound(err, errs.ErrHotelNotFound)
		}
		v, err := q.roomTypes.ListByHotel(ctx, db, hotelID)
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
