//go:build unit || e2e

package builder

import (
	"hotel-admin/internal/domain/roomtype"
	reqdto "hotel-admin/internal/handler/dto/request"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/usecase/queries"
)

type RoomTypeBuilder struct {
	ID       int64
	HotelID  int64
	Name     string
	BaseRate float64
}

func NewRoomTypeBuilder() *RoomTypeBuilder {
	return &RoomTypeBuilder{
		HotelID:  1,
		Name:     "Deluxe",
		BaseRate: 200.0,
	}
}

func (b *RoomTypeBuilder) With(mutate func(*RoomTypeBuilder)) *RoomTypeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RoomTypeBuilder) BuildDomain() (*roomtype.RoomType, error) {
	return roomtype.NewRoomType(b.ID, b.HotelID, b.Name, b.BaseRate)
}

func (b *RoomTypeBuilder) BuildInfra() sqlc.RoomTypes {
	return sqlc.RoomTypes{
		ID:       b.ID,
		HotelID:  b.HotelID,
		Name:     b.Name,
		BaseRate: b.BaseRate,
	}
}

func (b *RoomTypeBuilder) BuildView() *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:       b.ID,
		HotelID:  b.HotelID,
		Name:     b.Name,
		BaseRate: b.BaseRate,
	}
}

func (b *RoomTypeBuilder) BuildCreateDTO() reqdto.CreateRoomTypeRequest {
	baseRate := b.BaseRate
	return reqdto.CreateRoomTypeRequest{
		HotelID:  b.HotelID,
		Name:     b.Name,
		BaseRate: &baseRate,
	}
}

// Fluent builder methods
func (b *RoomTypeBuilder) WithID(id int64) *RoomTypeBuilder {
	b.ID = id
	return b
}

func (b *RoomTypeBuilder) WithHotelID(hotelID int64) *RoomTypeBuilder {
	b.HotelID = hotelID
	return b
}

func (b *RoomTypeBuilder) WithName(name string) *RoomTypeBuilder {
	b.Name = name
	return b
}

func (b *RoomTypeBuilder) WithBaseRate(rate float64) *RoomTypeBuilder {
	b.BaseRate = rate
	return b
}
