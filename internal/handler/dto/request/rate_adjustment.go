package request

import (
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/patch"
	"hotel-admin/internal/usecase/commands"
)

// EffectiveDate is YYYY-MM-DD; a missing date is rejected by the domain.
type CreateRateAdjustmentRequest struct {
	RoomTypeID       int64         `json:"room_type_id" binding:"required"`
	AdjustmentAmount *float64      `json:"adjustment_amount" binding:"required"`
	EffectiveDate    dateonly.Date `json:"effective_date"`
	Reason           string        `json:"reason" binding:"required"`
}

type UpdateRateAdjustmentRequest struct {
	RoomTypeID       *int64         `json:"room_type_id" binding:"omitempty,min=1"`
	AdjustmentAmount *float64       `json:"adjustment_amount"`
	EffectiveDate    *dateonly.Date `json:"effective_date"`
	Reason           *string        `json:"reason" binding:"omitempty,min=1"`
}

func (r *CreateRateAdjustmentRequest) ToInput() commands.CreateRateAdjustmentInput {
	return commands.CreateRateAdjustmentInput{
		RoomTypeID:       r.RoomTypeID,
		AdjustmentAmount: patch.Coalesce(r.AdjustmentAmount, 0),
		EffectiveDate:    r.EffectiveDate,
		Reason:           r.Reason,
	}
}

func (r *UpdateRateAdjustmentRequest) ToInput() commands.UpdateRateAdjustmentInput {
	return commands.UpdateRateAdjustmentInput{
		RoomTypeID:       r.RoomTypeID,
		AdjustmentAmount: r.AdjustmentAmount,
		EffectiveDate:    r.EffectiveDate,
		Reason:           r.Reason,
	}
}
