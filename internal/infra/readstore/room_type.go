package readstore

import (
	"context"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type RoomTypeReadQueries interface {
	GetRoomType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RoomTypes, error)
	ListRoomTypes(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRoomTypesParams) ([]sqlc.RoomTypes, error)
	ListRoomTypesByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) ([]sqlc.RoomTypes, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeReadQueries
}

func NewRoomTypeReadStore(queries RoomTypeReadQueries) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
	}
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomType(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return toRoomTypeView(row), nil
}

func (r *RoomTypeReadStore) List(ctx context.Context, db sqlc.DBTX, page queries.Page) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, db, sqlc.ListRoomTypesParams{
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	return toRoomTypeViews(rows), nil
}

func (r *RoomTypeReadStore) ListByHotel(ctx context.Context, db sqlc.DBTX, hotelID int64) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypesByHotel(ctx, db, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types by hotel", err)
	}
	return toRoomTypeViews(rows), nil
}

func toRoomTypeView(row sqlc.RoomTypes) *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:       row.ID,
		HotelID:  row.HotelID,
		Name:     row.Name,
		BaseRate: row.BaseRate,
	}
}

func toRoomTypeViews(rows []sqlc.RoomTypes) []*queries.RoomTypeView {
	views := make([]*queries.RoomTypeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toRoomTypeView(row))
	}
	return views
}
