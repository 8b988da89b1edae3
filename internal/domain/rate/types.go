package rate

import "errors"

var (
	ErrEmptyReason       = errors.New("adjustment reason cannot be empty")
	ErrInvalidAmount     = errors.New("adjustment amount must be a finite number")
	ErrMissingDate       = errors.New("effective date is required")
	ErrInvalidRoomTypeID = errors.New("room type id is required")
)
