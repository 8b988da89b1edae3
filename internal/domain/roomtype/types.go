package roomtype

import "errors"

var (
	ErrEmptyName       = errors.New("room type name cannot be empty")
	ErrNonPositiveRate = errors.New("base rate must be positive")
	ErrInvalidHotelID  = errors.New("hotel id is required")
)
