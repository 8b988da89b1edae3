package rate

import (
	"hotel-admin/internal/domain/roomtype"
	"hotel-admin/internal/pkg/dateonly"
)

// Quote is the effective nightly rate of a room type on one date.
type Quote struct {
	RoomTypeID        int64
	BaseRate          float64
	EffectiveRate     float64
	AdjustmentApplied float64
	EffectiveDate     dateonly.Date
	// Applied is the adjustment in force, nil when the base rate applies unchanged.
	Applied *Adjustment
}

// SelectApplicable returns the adjustment in force on target: the latest
// effective date not after target, ties broken by highest id. Adjustments for
// other room types are ignored. Returns nil when none qualifies.
func SelectApplicable(roomTypeID int64, adjustments []*Adjustment, target dateonly.Date) *Adjustment {
	var selected *Adjustment
	for _, adj := range adjustments {
		if adj == nil || adj.roomTypeID != roomTypeID || !adj.QualifiesOn(target) {
			continue
		}
		if selected == nil || adj.supersedes(selected) {
			selected = adj
		}
	}
	return selected
}

// Resolve computes base rate plus the single applicable adjustment. Adjustments
// never compound: only the latest qualifying one counts.
func Resolve(rt *roomtype.RoomType, adjustments []*Adjustment, target dateonly.Date) Quote {
	base := rt.BaseRate().Value()
	q := Quote{
		RoomTypeID:    rt.ID(),
		BaseRate:      base,
		EffectiveRate: base,
		EffectiveDate: target,
	}

	if applied := SelectApplicable(rt.ID(), adjustments, target); applied != nil {
		q.Applied = applied
		q.AdjustmentApplied = applied.Amount()
		q.EffectiveRate = base + applied.Amount()
	}

	return q
}
