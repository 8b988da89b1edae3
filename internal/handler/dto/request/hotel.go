package request

import "hotel-admin/internal/usecase/commands"

type CreateHotelRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateHotelRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Location *string `json:"location" binding:"omitempty,min=1"`
	IsActive *bool   `json:"is_active"`
}

func (r *CreateHotelRequest) ToInput() commands.CreateHotelInput {
	return commands.CreateHotelInput{
		Name:     r.Name,
		Location: r.Location,
		IsActive: r.IsActive,
	}
}

func (r *UpdateHotelRequest) ToInput() commands.UpdateHotelInput {
	return commands.UpdateHotelInput{
		Name:     r.Name,
		Location: r.Location,
		IsActive: r.IsActive,
	}
}
