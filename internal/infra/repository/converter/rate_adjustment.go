package converter

import (
	"hotel-admin/internal/domain/rate"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/pgconv"
)

func AdjustmentFromRow(row sqlc.RateAdjustments) (*rate.Adjustment, error) {
	date, err := pgconv.DateFromPgtype(row.EffectiveDate)
	if err != nil {
		return nil, err
	}
	return rate.NewAdjustment(row.ID, row.RoomTypeID, row.AdjustmentAmount, date, row.Reason)
}

func AdjustmentsFromRows(rows []sqlc.RateAdjustments) ([]*rate.Adjustment, error) {
	out := make([]*rate.Adjustment, 0, len(rows))
	for _, row := range rows {
		adj, err := AdjustmentFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, adj)
	}
	return out, nil
}

func AdjustmentToCreateParams(adj *rate.Adjustment) sqlc.CreateRateAdjustmentParams {
	return sqlc.CreateRateAdjustmentParams{
		RoomTypeID:       adj.RoomTypeID(),
		AdjustmentAmount: adj.Amount(),
		EffectiveDate:    pgconv.DateToPgtype(adj.EffectiveDate()),
		Reason:           adj.Reason(),
	}
}

func AdjustmentToUpdateParams(adj *rate.Adjustment) sqlc.UpdateRateAdjustmentParams {
	return sqlc.UpdateRateAdjustmentParams{
		ID:               adj.ID(),
		RoomTypeID:       adj.RoomTypeID(),
		AdjustmentAmount: adj.Amount(),
		EffectiveDate:    pgconv.DateToPgtype(adj.EffectiveDate()),
		Reason:           adj.Reason(),
	}
}
