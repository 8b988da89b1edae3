package rate

import (
	"math"
	"strings"

	"hotel-admin/internal/pkg/dateonly"
)

// Adjustment changes a room type's nightly rate by a signed amount starting on
// effectiveDate. It stays in force until a later-dated adjustment supersedes it.
type Adjustment struct {
	id            int64
	roomTypeID    int64
	amount        float64
	effectiveDate dateonly.Date
	reason        string
}

func NewAdjustment(id, roomTypeID int64, amount float64, effectiveDate dateonly.Date, reason string) (*Adjustment, error) {
	if roomTypeID <= 0 {
		return nil, ErrInvalidRoomTypeID
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}
	if effectiveDate.IsZero() {
		return nil, ErrMissingDate
	}
	r := strings.TrimSpace(reason)
	if r == "" {
		return nil, ErrEmptyReason
	}

	return &Adjustment{
		id:            id,
		roomTypeID:    roomTypeID,
		amount:        amount,
		effectiveDate: effectiveDate,
		reason:        r,
	}, nil
}

func (a *Adjustment) ID() int64                    { return a.id }
func (a *Adjustment) RoomTypeID() int64            { return a.roomTypeID }
func (a *Adjustment) Amount() float64              { return a.amount }
func (a *Adjustment) EffectiveDate() dateonly.Date { return a.effectiveDate }
func (a *Adjustment) Reason() string               { return a.reason }

// QualifiesOn reports whether the adjustment is in force on target (inclusive bound).
func (a *Adjustment) QualifiesOn(target dateonly.Date) bool {
	return !a.effectiveDate.After(target)
}

// supersedes orders adjustments by effective date, then by id so that the most
// recently created of several same-day adjustments wins.
func (a *Adjustment) supersedes(other *Adjustment) bool {
	if c := a.effectiveDate.Compare(other.effectiveDate); c != 0 {
		return c > 0
	}
	return a.id > other.id
}
