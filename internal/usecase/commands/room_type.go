package commands

import (
	"context"

	"hotel-admin/internal/domain/roomtype"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/patch"
	"hotel-admin/internal/usecase/shared"
)

type CreateRoomTypeInput struct {
	HotelID  int64
	Name     string
	BaseRate float64
}

// Nil fields are left unchanged
type UpdateRoomTypeInput struct {
	HotelID  *int64
	Name     *string
	BaseRate *float64
}

type RoomTypeCommands interface {
	Create(ctx context.Context, in CreateRoomTypeInput) (*roomtype.RoomType, error)
	Update(ctx context.Context, id int64, in UpdateRoomTypeInput) (*roomtype.RoomType, error)
	Delete(ctx context.Context, id int64) (*roomtype.RoomType, error)
}

type roomTypeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRoomTypeCommands(uow shared.UnitOfWork) RoomTypeCommands {
	return &roomTypeCommandsImpl{uow: uow}
}

func (c *roomTypeCommandsImpl) Create(ctx context.Context, in CreateRoomTypeInput) (*roomtype.RoomType, error) {
	rt, err := roomtype.NewRoomType(0, in.HotelID, in.Name, in.BaseRate)
	if err != nil {
		return nil, validationErr(err)
	}

	var created *roomtype.RoomType
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Hotels().FindByID(ctx, rt.HotelID()); err != nil {
			return mapRepoErr(err, errs.ErrHotelNotFound)
		}

		row, err := tx.RoomTypes().Create(ctx, rt)
		if err != nil {
			return mapRoomTypeWriteErr(err)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *roomTypeCommandsImpl) Update(ctx context.Context, id int64, in UpdateRoomTypeInput) (*roomtype.RoomType, error) {
	var updated *roomtype.RoomType
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.RoomTypes().FindByID(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrRoomTypeNotFound)
		}

		if patch.Changed(in.HotelID, current.HotelID()) {
			if _, err := tx.Hotels().FindByID(ctx, *in.HotelID); err != nil {
				return mapRepoErr(err, errs.ErrHotelNotFound)
			}
		}

		merged, err := roomtype.NewRoomType(
			current.ID(),
			patch.Coalesce(in.HotelID, current.HotelID()),
			patch.Coalesce(in.Name, current.Name().String()),
			patch.Coalesce(in.BaseRate, current.BaseRate().Value()),
		)
		if err != nil {
			return validationErr(err)
		}

		row, err := tx.RoomTypes().Update(ctx, merged)
		if err != nil {
			return mapRoomTypeWriteErr(err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete cascades to the room type's rate adjustments.
func (c *roomTypeCommandsImpl) Delete(ctx context.Context, id int64) (*roomtype.RoomType, error) {
	var removed *roomtype.RoomType
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.RoomTypes().Delete(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrRoomTypeNotFound)
		}
		removed = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// The hotel vanished between the existence check and the write
func mapRoomTypeWriteErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, errs.ErrHotelNotFound)
	}
	return mapRepoErr(err, errs.ErrRoomTypeNotFound)
}
