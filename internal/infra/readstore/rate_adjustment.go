package readstore

import (
	"context"

	"hotel-admin/internal/infra"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/pgconv"
	"hotel-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type RateAdjustmentReadQueries interface {
	GetRateAdjustment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RateAdjustments, error)
	ListRateAdjustments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRateAdjustmentsParams) ([]sqlc.RateAdjustments, error)
	ListRateAdjustmentsByRoomType(ctx context.Context, db sqlc.DBTX, roomTypeID int64) ([]sqlc.RateAdjustments, error)
	ListRateAdjustmentsUpTo(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRateAdjustmentsUpToParams) ([]sqlc.RateAdjustments, error)
}

type RateAdjustmentReadStore struct {
	queries RateAdjustmentReadQueries
}

func NewRateAdjustmentReadStore(queries RateAdjustmentReadQueries) *RateAdjustmentReadStore {
	return &RateAdjustmentReadStore{
		queries: queries,
	}
}

func (r *RateAdjustmentReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id int64) (*queries.RateAdjustmentView, error) {
	row, err := r.queries.GetRateAdjustment(ctx, db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rate adjustment", err)
	}
	return toRateAdjustmentView(row)
}

func (r *RateAdjustmentReadStore) List(ctx context.Context, db sqlc.DBTX, page queries.Page) ([]*queries.RateAdjustmentView, error) {
	rows, err := r.queries.ListRateAdjustments(ctx, db, sqlc.ListRateAdjustmentsParams{
		Limit:  page.Limit,
		Offset: page.Skip,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate adjustments", err)
	}
	return toRateAdjustmentViews(rows)
}

func (r *RateAdjustmentReadStore) ListByRoomType(ctx context.Context, db sqlc.DBTX, roomTypeID int64) ([]*queries.RateAdjustmentView, error) {
	rows, err := r.queries.ListRateAdjustmentsByRoomType(ctx, db, roomTypeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rate adjustments by room type", err)
	}
	return toRateAdjustmentViews(rows)
}

// ListUpTo returns the adjustments of a room type effective on or before upTo,
// latest first. limit <= 0 returns all of them.
func (r *RateAdjustmentReadStore) ListUpTo(ctx context.Context, db sqlc.DBTX, roomTypeID int64, upTo dateonly.Date, limit int32) ([]*queries.RateAdjustmentView, error) {
	rows, err := r.queries.ListRateAdjustmentsUpTo(ctx, db, sqlc.ListRateAdjustmentsUpToParams{
		RoomTypeID:    roomTypeID,
		EffectiveDate: pgconv.DateToPgtype(upTo),
		RowLimit:      pgtype.Int4{Int32: limit, Valid: limit > 0},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list applicable rate adjustments", err)
	}
	return toRateAdjustmentViews(rows)
}

func toRateAdjustmentView(row sqlc.RateAdjustments) (*queries.RateAdjustmentView, error) {
	date, err := pgconv.DateFromPgtype(row.EffectiveDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rate adjustment has an invalid date", err, infra.KindDBFailure)
	}
	return &queries.RateAdjustmentView{
		ID:               row.ID,
		RoomTypeID:       row.RoomTypeID,
		AdjustmentAmount: row.AdjustmentAmount,
		EffectiveDate:    date,
		Reason:           row.Reason,
	}, nil
}

func toRateAdjustmentViews(rows []sqlc.RateAdjustments) ([]*queries.RateAdjustmentView, error) {
	views := make([]*queries.RateAdjustmentView, 0, len(rows))
	for _, row := range rows {
		v, err := toRateAdjustmentView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
