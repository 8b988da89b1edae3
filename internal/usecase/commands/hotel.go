package commands

import (
	"context"

	"hotel-admin/internal/domain/hotel"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/patch"
	"hotel-admin/internal/usecase/shared"
)

type CreateHotelInput struct {
	Name     string
	Location string
	IsActive *bool // defaults to true
}

// Nil fields are left unchanged
type UpdateHotelInput struct {
	Name     *string
	Location *string
	IsActive *bool
}

type HotelCommands interface {
	Create(ctx context.Context, in CreateHotelInput) (*hotel.Hotel, error)
	Update(ctx context.Context, id int64, in UpdateHotelInput) (*hotel.Hotel, error)
	Delete(ctx context.Context, id int64) (*hotel.Hotel, error)
}

type hotelCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewHotelCommands(uow shared.UnitOfWork) HotelCommands {
	return &hotelCommandsImpl{uow: uow}
}

func (c *hotelCommandsImpl) Create(ctx context.Context, in CreateHotelInput) (*hotel.Hotel, error) {
	h, err := hotel.NewHotel(0, in.Name, in.Location, patch.Coalesce(in.IsActive, true))
	if err != nil {
		return nil, validationErr(err)
	}

	var created *hotel.Hotel
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.Hotels().Create(ctx, h)
		if err != nil {
			return mapHotelWriteErr(err)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *hotelCommandsImpl) Update(ctx context.Context, id int64, in UpdateHotelInput) (*hotel.Hotel, error) {
	var updated *hotel.Hotel
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Hotels().FindByID(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrHotelNotFound)
		}

		merged, err := hotel.NewHotel(
			current.ID(),
			patch.Coalesce(in.Name, current.Name().String()),
			patch.Coalesce(in.Location, current.Location().String()),
			patch.Coalesce(in.IsActive, current.IsActive()),
		)
		if err != nil {
			return validationErr(err)
		}

		row, err := tx.Hotels().Update(ctx, merged)
		if err != nil {
			return mapHotelWriteErr(err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses to remove a hotel that still owns room types.
func (c *hotelCommandsImpl) Delete(ctx context.Context, id int64) (*hotel.Hotel, error) {
	var removed *hotel.Hotel
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Hotels().FindByID(ctx, id); err != nil {
			return mapRepoErr(err, errs.ErrHotelNotFound)
		}

		n, err := tx.Hotels().CountRoomTypes(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrHotelNotFound)
		}
		if n > 0 {
			return errs.ErrHotelInUse
		}

		row, err := tx.Hotels().Delete(ctx, id)
		if err != nil {
			// A room type inserted concurrently still trips the RESTRICT constraint
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, errs.ErrHotelInUse)
			}
			return mapRepoErr(err, errs.ErrHotelNotFound)
		}
		removed = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func mapHotelWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrDuplicateHotelName)
	}
	return mapRepoErr(err, errs.ErrHotelNotFound)
}
