package converter

import (
	"hotel-admin/internal/domain/roomtype"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

func RoomTypeFromRow(row sqlc.RoomTypes) (*roomtype.RoomType, error) {
	return roomtype.NewRoomType(row.ID, row.HotelID, row.Name, row.BaseRate)
}

func RoomTypeToCreateParams(rt *roomtype.RoomType) sqlc.CreateRoomTypeParams {
	return sqlc.CreateRoomTypeParams{
		HotelID:  rt.HotelID(),
		Name:     rt.Name().String(),
		BaseRate: rt.BaseRate().Value(),
	}
}

func RoomTypeToUpdateParams(rt *roomtype.RoomType) sqlc.UpdateRoomTypeParams {
	return sqlc.UpdateRoomTypeParams{
		ID:       rt.ID(),
		HotelID:  rt.HotelID(),
		Name:     rt.Name().String(),
		BaseRate: rt.BaseRate().Value(),
	}
}
