package queries

import (
	"context"

	"hotel-admin/internal/domain/rate"
	"hotel-admin/internal/domain/roomtype"
	sqlc "hotel-admin/internal/infra/sqlc/generated"
	"hotel-admin/internal/pkg/clock"
	"hotel-admin/internal/pkg/dateonly"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase/shared"
)

// Rate lookup outcomes reported to the metrics recorder
const (
	OutcomeAdjusted = "adjusted"
	OutcomeBase     = "base"
	OutcomeNotFound = "not_found"
)

type RateLookupRecorder interface {
	ObserveRateLookup(outcome string)
}

type EffectiveRateQueries interface {
	// Calculate resolves the rate on date, or on today's date when date is nil.
	Calculate(ctx context.Context, roomTypeID int64, date *dateonly.Date) (*EffectiveRateView, error)
}

type effectiveRateQueriesImpl struct {
	uow         shared.UnitOfWork
	roomTypes   RoomTypeReadStore
	adjustments RateAdjustmentReadStore
	clock       clock.Clock
	recorder    RateLookupRecorder
}

func NewEffectiveRateQueries(
	uow shared.UnitOfWork,
	roomTypes RoomTypeReadStore,
	adjustments RateAdjustmentReadStore,
	clk clock.Clock,
	recorder RateLookupRecorder,
) EffectiveRateQueries {
	return &effectiveRateQueriesImpl{
		uow:         uow,
		roomTypes:   roomTypes,
		adjustments: adjustments,
		clock:       clk,
		recorder:    recorder,
	}
}

func (q *effectiveRateQueriesImpl) Calculate(ctx context.Context, roomTypeID int64, date *dateonly.Date) (*EffectiveRateView, error) {
	target := dateonly.FromTime(q.clock.Now())
	if date != nil {
		target = *date
	}

	var quote rate.Quote
	// Room type and adjustments are read from one snapshot
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		rtView, err := q.roomTypes.FindByID(ctx, db, roomTypeID)
		if err != nil {
			return mapNotFound(err, errs.ErrRoomTypeNotFound)
		}
		rt, err := roomtype.NewRoomType(rtView.ID, rtView.HotelID, rtView.Name, rtView.BaseRate)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// the store orders by (effective_date, id) descending, so the first row
		// is the applicable one; Resolve still re-checks it
		views, err := q.adjustments.ListUpTo(ctx, db, roomTypeID, target, 1)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		adjustments, err := toAdjustments(views)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		quote = rate.Resolve(rt, adjustments, target)
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrRoomTypeNotFound) {
			q.observe(OutcomeNotFound)
		}
		return nil, err
	}

	if quote.Applied != nil {
		q.observe(OutcomeAdjusted)
	} else {
		q.observe(OutcomeBase)
	}

	return &EffectiveRateView{
		RoomTypeID:        quote.RoomTypeID,
		BaseRate:          quote.BaseRate,
		EffectiveRate:     quote.EffectiveRate,
		AdjustmentApplied: quote.AdjustmentApplied,
		EffectiveDate:     quote.EffectiveDate,
	}, nil
}

func (q *effectiveRateQueriesImpl) observe(outcome string) {
	if q.recorder != nil {
		q.recorder.ObserveRateLookup(outcome)
	}
}

func toAdjustments(views []*RateAdjustmentView) ([]*rate.Adjustment, error) {
	out := make([]*rate.Adjustment, 0, len(views))
	for _, v := range views {
		adj, err := rate.NewAdjustment(v.ID, v.RoomTypeID, v.AdjustmentAmount, v.EffectiveDate, v.Reason)
		if err != nil {
			return nil, err
		}
		out = append(out, adj)
	}
	return out, nil
}
