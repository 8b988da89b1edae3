package repository

import (
	"context"

	"hotel-admin/internal/domain/rate"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository/converter"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

type RateAdjustmentWriteQueries interface {
	GetRateAdjustment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RateAdjustments, error)
	CreateRateAdjustment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRateAdjustmentParams) (sqlc.RateAdjustments, error)
	UpdateRateAdjustment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRateAdjustmentParams) (sqlc.RateAdjustments, error)
	DeleteRateAdjustment(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RateAdjustments, error)
}

type RateAdjustmentRepository struct {
	queries RateAdjustmentWriteQueries
	db      sqlc.DBTX
}

func NewRateAdjustmentRepository(queries RateAdjustmentWriteQueries, db sqlc.DBTX) *RateAdjustmentRepository {
	return &RateAdjustmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RateAdjustmentRepository) FindByID(ctx context.Context, id int64) (*rate.Adjustment, error) {
	row, err := r.queries.GetRateAdjustment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rate adjustment", err)
	}
	return toAdjustment(row)
}

func (r *RateAdjustmentRepository) Create(ctx context.Context, adj *rate.Adjustment) (*rate.Adjustment, error) {
	row, err := r.queries.CreateRateAdjustment(ctx, r.db, converter.AdjustmentToCreateParams(adj))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create rate adjustment", err)
	}
	return toAdjustment(row)
}

func (r *RateAdjustmentRepository) Update(ctx context.Context, adj *rate.Adjustment) (*rate.Adjustment, error) {
	row, err := r.queries.UpdateRateAdjustment(ctx, r.db, converter.AdjustmentToUpdateParams(adj))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update rate adjustment", err)
	}
	return toAdjustment(row)
}

func (r *RateAdjustmentRepository) Delete(ctx context.Context, id int64) (*rate.Adjustment, error) {
	row, err := r.queries.DeleteRateAdjustment(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete rate adjustment", err)
	}
	return toAdjustment(row)
}

func toAdjustment(row sqlc.RateAdjustments) (*rate.Adjustment, error) {
	adj, err := converter.AdjustmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored rate adjustment is invalid", err, infra.KindDBFailure)
	}
	return adj, nil
}
