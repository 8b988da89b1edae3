package response

import (
	"hotel-admin/internal/domain/roomtype"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/usecase/queries"
)

type RoomTypeResponse struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotel_id"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"base_rate"`
}

func FromRoomType(rt *roomtype.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:       rt.ID(),
		HotelID:  rt.HotelID(),
		Name:     rt.Name().String(),
		BaseRate: rt.BaseRate().Value(),
	}
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:       v.ID,
		HotelID:  v.HotelID,
		Name:     v.Name,
		BaseRate: v.BaseRate,
	}
}

func FromRoomTypeViews(vs []*queries.RoomTypeView) []*RoomTypeResponse {
	res := make([]*RoomTypeResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRoomTypeView(v)
	}
	return res
}

type EffectiveRateResponse struct {
	RoomTypeID        int64         `json:"room_type_id"`
	BaseRate          float64       `json:"base_rate"`
	EffectiveRate     float64       `json:"effective_rate"`
	AdjustmentApplied float64       `json:"adjustment_applied"`
	EffectiveDate     dateonly.Date `json:"effective_date"`
}

func FromEffectiveRateView(v *queries.EffectiveRateView) *EffectiveRateResponse {
	return &EffectiveRateResponse{
		RoomTypeID:        v.RoomTypeID,
		BaseRate:          v.BaseRate,
		EffectiveRate:     v.EffectiveRate,
		AdjustmentApplied: v.AdjustmentApplied,
		EffectiveDate:     v.EffectiveDate,
	}
}
