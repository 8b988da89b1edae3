package request

import (
	"hotel-admin/internal/pkg/patch"
	"hotel-admin/internal/usecase/commands"
)

type CreateRoomTypeRequest struct {
	HotelID  int64    `json:"hotel_id" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	BaseRate *float64 `json:"base_rate" binding:"required,gt=0"`
}

type UpdateRoomTypeRequest struct {
	HotelID  *int64   `json:"hotel_id" binding:"omitempty,min=1"`
	Name     *string  `json:"name" binding:"omitempty,min=1"`
	BaseRate *float64 `json:"base_rate" binding:"omitempty,gt=0"`
}

func (r *CreateRoomTypeRequest) ToInput() commands.CreateRoomTypeInput {
	return commands.CreateRoomTypeInput{
		HotelID:  r.HotelID,
		Name:     r.Name,
		BaseRate: patch.Coalesce(r.BaseRate, 0),
	}
}

func (r *UpdateRoomTypeRequest) ToInput() commands.UpdateRoomTypeInput {
	return commands.UpdateRoomTypeInput{
		HotelID:  r.HotelID,
		Name:     r.Name,
		BaseRate: r.BaseRate,
	}
}
