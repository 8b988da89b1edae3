package converter

import (
	"hotel-admin/internal/domain/hotel"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

func HotelFromRow(row sqlc.Hotels) (*hotel.Hotel, error) {
	return hotel.NewHotel(row.ID, row.Name, row.Location, row.IsActive)
}

func HotelToCreateParams(h *hotel.Hotel) sqlc.CreateHotelParams {
	return sqlc.CreateHotelParams{
		Name:     h.Name().String(),
		Location: h.Location().String(),
		IsActive: h.IsActive(),
	}
}

func HotelToUpdateParams(h *hotel.Hotel) sqlc.UpdateHotelParams {
	return sqlc.UpdateHotelParams{
		ID:       h.ID(),
		Name:     h.Name().String(),
		Location: h.Location().String(),
		IsActive: h.IsActive(),
	}
}
