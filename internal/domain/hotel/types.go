package hotel

import "errors"

var (
	ErrEmptyName     = errors.New("hotel name cannot be empty")
	ErrEmptyLocation = errors.New("hotel location cannot be empty")
)
