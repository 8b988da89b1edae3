package response

import (
	"hotel-admin/internal/domain/rate"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/usecase/queries"
)

type RateAdjustmentResponse struct {
	ID               int64         `json:"id"`
	RoomTypeID       int64         `json:"room_type_id"`
	AdjustmentAmount float64       `json:"adjustment_amount"`
	EffectiveDate    dateonly.Date `json:"effective_date"`
	Reason           string        `json:"reason"`
}

func FromRateAdjustment(a *rate.Adjustment) *RateAdjustmentResponse {
	return &RateAdjustmentResponse{
		ID:               a.ID(),
		RoomTypeID:       a.RoomTypeID(),
		AdjustmentAmount: a.Amount(),
		EffectiveDate:    a.EffectiveDate(),
		Reason:           a.Reason(),
	}
}

func FromRateAdjustmentView(v *queries.RateAdjustmentView) *RateAdjustmentResponse {
	return &RateAdjustmentResponse{
		ID:               v.ID,
		RoomTypeID:       v.RoomTypeID,
		AdjustmentAmount: v.AdjustmentAmount,
		EffectiveDate:    v.EffectiveDate,
		Reason:           v.Reason,
	}
}

func FromRateAdjustmentViews(vs []*queries.RateAdjustmentView) []*RateAdjustmentResponse {
	res := make([]*RateAdjustmentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRateAdjustmentView(v)
	}
	return res
}
