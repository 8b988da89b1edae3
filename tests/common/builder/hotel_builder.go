//go:build unit || e2e

package builder

import (
	"hotel-admin/internal/domain/hotel"
	reqdto "hotel-admin/internal/handler/dto/request"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type HotelBuilder struct {
	ID       int64
	Name     string
	Location string
	IsActive bool
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		Name:     "Grand Budapest",
		Location: "Zubrowka",
		IsActive: true,
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	return hotel.NewHotel(b.ID, b.Name, b.Location, b.IsActive)
}

func (b *HotelBuilder) BuildInfra() sqlc.Hotels {
	return sqlc.Hotels{
		ID:       b.ID,
		Name:     b.Name,
		Location: b.Location,
		IsActive: b.IsActive,
	}
}

func (b *HotelBuilder) BuildView() *queries.HotelView {
	return &queries.HotelView{
		ID:       b.ID,
		Name:     b.Name,
		Location: b.Location,
		IsActive: b.IsActive,
	}
}

func (b *HotelBuilder) BuildCreateDTO() reqdto.CreateHotelRequest {
	isActive := b.IsActive
	return reqdto.CreateHotelRequest{
		Name:     b.Name,
		Location: b.Location,
		IsActive: &isActive,
	}
}

// Fluent builder methods
func (b *HotelBuilder) WithID(id int64) *HotelBuilder {
	b.ID = id
	return b
}

func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithLocation(location string) *HotelBuilder {
	b.Location = location
	return b
}

func (b *HotelBuilder) AsInactive() *HotelBuilder {
	b.IsActive = false
	return b
}
