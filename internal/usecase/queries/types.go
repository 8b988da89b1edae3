package queries

import (
	"hotel-admin/internal/pkg/dateonly"
)

// HotelView represents read-optimized hotel data
type HotelView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"is_active"`
}

// RoomTypeView represents read-optimized room type data
type RoomTypeView struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotel_id"`
	Name     string  `json:"name"`
	BaseRate float64 `json:"base_rate"`
}

// RateAdjustmentView represents read-optimized rate adjustment data
type RateAdjustmentView struct {
	ID               int64         `json:"id"`
	RoomTypeID       int64         `json:"room_type_id"`
	AdjustmentAmount float64       `json:"adjustment_amount"`
	EffectiveDate    dateonly.Date `json:"effective_date"`
	Reason           string        `json:"reason"`
}

// UserView never carries the password hash
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// EffectiveRateView is the resolved nightly rate of a room type on a date
type EffectiveRateView struct {
	RoomTypeID        int64         `json:"room_type_id"`
	BaseRate          float64       `json:"base_rate"`
	EffectiveRate     float64       `json:"effective_rate"`
	AdjustmentApplied float64       `json:"adjustment_applied"`
	EffectiveDate     dateonly.Date `json:"effective_date"`
}
