package response

import (
	"hotel-admin/internal/domain/hotel"
	"hotel-admin/internal/usecase/queries"
)

type HotelResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"is_active"`
}

func FromHotel(h *hotel.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:       h.ID(),
		Name:     h.Name().String(),
		Location: h.Location().String(),
		IsActive: h.IsActive(),
	}
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	return &HotelResponse{
		ID:       v.ID,
		Name:     v.Name,
		Location: v.Location,
		IsActive: v.IsActive,
	}
}

func FromHotelViews(vs []*queries.HotelView) []*HotelResponse {
	res := make([]*HotelResponse, len(vs))
	for i, v := range vs {
		res[i] = FromHotelView(v)
	}
	return res
}
