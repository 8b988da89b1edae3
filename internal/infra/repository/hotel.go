package repository

import (
	"context"

	"hotel-admin/internal/domain/hotel"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository/converter"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

type HotelWriteQueries interface {
	GetHotel(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Hotels, error)
	CreateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHotelParams) (sqlc.Hotels, error)
	UpdateHotel(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHotelParams) (sqlc.Hotels, error)
	DeleteHotel(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Hotels, error)
	CountRoomTypesByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) (int64, error)
}

type HotelRepository struct {
	queries HotelWriteQueries
	db      sqlc.DBTX
}

func NewHotelRepository(queries HotelWriteQueries, db sqlc.DBTX) *HotelRepository {
	return &HotelRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HotelRepository) FindByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	row, err := r.queries.GetHotel(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return toHotel(row)
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) (*hotel.Hotel, error) {
	row, err := r.queries.CreateHotel(ctx, r.db, converter.HotelToCreateParams(h))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create hotel", err)
	}
	return toHotel(row)
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) (*hotel.Hotel, error) {
	row, err := r.queries.UpdateHotel(ctx, r.db, converter.HotelToUpdateParams(h))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update hotel", err)
	}
	return toHotel(row)
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) (*hotel.Hotel, error) {
	row, err := r.queries.DeleteHotel(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete hotel", err)
	}
	return toHotel(row)
}

func (r *HotelRepository) CountRoomTypes(ctx context.Context, id int64) (int64, error) {
	n, err := r.queries.CountRoomTypesByHotel(ctx, r.db, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count room types of hotel", err)
	}
	return n, nil
}

func toHotel(row sqlc.Hotels) (*hotel.Hotel, error) {
	h, err := converter.HotelFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hotel is invalid", err, infra.KindDBFailure)
	}
	return h, nil
}
