package repository

import (
	"context"

	"hotel-admin/internal/domain/roomtype"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/infra/repository/converter"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
)

type RoomTypeWriteQueries interface {
	GetRoomType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RoomTypes, error)
	CreateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomTypeParams) (sqlc.RoomTypes, error)
	UpdateRoomType(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomTypeParams) (sqlc.RoomTypes, error)
	DeleteRoomType(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.RoomTypes, error)
}

type RoomTypeRepository struct {
	queries RoomTypeWriteQueries
	db      sqlc.DBTX
}

func NewRoomTypeRepository(queries RoomTypeWriteQueries, db sqlc.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	row, err := r.queries.GetRoomType(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room type", err)
	}
	return toRoomType(row)
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *roomtype.RoomType) (*roomtype.RoomType, error) {
	row, err := r.queries.CreateRoomType(ctx, r.db, converter.RoomTypeToCreateParams(rt))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create room type", err)
	}
	return toRoomType(row)
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *roomtype.RoomType) (*roomtype.RoomType, error) {
	row, err := r.queries.UpdateRoomType(ctx, r.db, converter.RoomTypeToUpdateParams(rt))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update room type", err)
	}
	return toRoomType(row)
}

// Delete removes the room type; its rate adjustments go with it (ON DELETE CASCADE).
func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	row, err := r.queries.DeleteRoomType(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete room type", err)
	}
	return toRoomType(row)
}

func toRoomType(row sqlc.RoomTypes) (*roomtype.RoomType, error) {
	rt, err := converter.RoomTypeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored room type is invalid", err, infra.KindDBFailure)
	}
	return rt, nil
}
