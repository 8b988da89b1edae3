package commands

import (
	"context"

	"hotel-admin/internal/domain/rate"
	"hotel-admin/internal/infra"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/pkg/patch"
	"hotel-admin/internal/usecase/shared"
)

type CreateRateAdjustmentInput struct {
	RoomTypeID       int64
	AdjustmentAmount float64
	EffectiveDate    dateonly.Date
	Reason           string
}

// Nil fields are left unchanged
type UpdateRateAdjustmentInput struct {
	RoomTypeID       *int64
	AdjustmentAmount *float64
	EffectiveDate    *dateonly.Date
	Reason           *string
}

type RateAdjustmentCommands interface {
	Create(ctx context.Context, in CreateRateAdjustmentInput) (*rate.Adjustment, error)
	Update(ctx context.Context, id int64, in UpdateRateAdjustmentInput) (*rate.Adjustment, error)
	Delete(ctx context.Context, id int64) (*rate.Adjustment, error)
}

type rateAdjustmentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewRateAdjustmentCommands(uow shared.UnitOfWork) RateAdjustmentCommands {
	return &rateAdjustmentCommandsImpl{uow: uow}
}

func (c *rateAdjustmentCommandsImpl) Create(ctx context.Context, in CreateRateAdjustmentInput) (*rate.Adjustment, error) {
	adj, err := rate.NewAdjustment(0, in.RoomTypeID, in.AdjustmentAmount, in.EffectiveDate, in.Reason)
	if err != nil {
		return nil, validationErr(err)
	}

	var created *rate.Adjustment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.RoomTypes().FindByID(ctx, adj.RoomTypeID()); err != nil {
			return mapRepoErr(err, errs.ErrRoomTypeNotFound)
		}

		row, err := tx.RateAdjustments().Create(ctx, adj)
		if err != nil {
			return mapAdjustmentWriteErr(err)
		}
		created = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *rateAdjustmentCommandsImpl) Update(ctx context.Context, id int64, in UpdateRateAdjustmentInput) (*rate.Adjustment, error) {
	var updated *rate.Adjustment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.RateAdjustments().FindByID(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrRateAdjustmentNotFound)
		}

		if patch.Changed(in.RoomTypeID, current.RoomTypeID()) {
			if _, err := tx.RoomTypes().FindByID(ctx, *in.RoomTypeID); err != nil {
				return mapRepoErr(err, errs.ErrRoomTypeNotFound)
			}
		}

		merged, err := rate.NewAdjustment(
			current.ID(),
			patch.Coalesce(in.RoomTypeID, current.RoomTypeID()),
			patch.Coalesce(in.AdjustmentAmount, current.Amount()),
			patch.Coalesce(in.EffectiveDate, current.EffectiveDate()),
			patch.Coalesce(in.Reason, current.Reason()),
		)
		if err != nil {
			return validationErr(err)
		}

		row, err := tx.RateAdjustments().Update(ctx, merged)
		if err != nil {
			return mapAdjustmentWriteErr(err)
		}
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *rateAdjustmentCommandsImpl) Delete(ctx context.Context, id int64) (*rate.Adjustment, error) {
	var removed *rate.Adjustment
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		row, err := tx.RateAdjustments().Delete(ctx, id)
		if err != nil {
			return mapRepoErr(err, errs.ErrRateAdjustmentNotFound)
		}
		removed = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func mapAdjustmentWriteErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, errs.ErrRoomTypeNotFound)
	}
	return mapRepoErr(err, errs.ErrRateAdjustmentNotFound)
}
