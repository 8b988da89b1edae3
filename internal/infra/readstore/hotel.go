package readstore

import (
	"context"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type HotelReadQueries interface {
	GetHotel(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Hotels, error)
	ListHotels(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHotelsParams) ([]sqlc.Hotels, error)
}

type HotelReadStore struct {
	queries HotelReadQueries
}

func NewHotelReadStore(queries HotelReadQueries) *HotelReadStore {
	return &HotelReadStore{
		queries: queries,
	}
}

func (r *HotelReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.HotelView, error) {
	row, err := r.queries.GetHotel(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return toHotelView(row), nil
}

func (r *HotelReadStore) List(ctx context.Context, db sqlc.DBTX, page queries.Page) ([]*queries.HotelView, error) {
	rows, err := r.queries.ListHotels(ctx, db, sqlc.ListHotelsParams{
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}

	views := make([]*queries.HotelView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toHotelView(row))
	}
	return views, nil
}

func toHotelView(row sqlc.Hotels) *queries.HotelView {
	return &queries.HotelView{
		ID:       row.ID,
		Name:     row.Name,
		Location: row.Location,
		IsActive: row.IsActive,
	}
}
