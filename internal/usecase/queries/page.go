package queries

import (
	"math"

	"hotel-admin/internal/pkg/errs"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var ErrInvalidPage = errs.New("skip must be >= 0 and limit between 1 and 1000")

// Page is an offset window over an id-ordered listing.
type Page struct {
	Skip  int32
	Limit int32
}

// NewPage applies the default limit when limit is nil.
func NewPage(skip int, limit *int) (Page, error) {
	l := DefaultListLimit
	if limit != nil {
		l = *limit
	}
	if skip < 0 || skip > math.MaxInt32 || l < 1 || l > MaxListLimit {
		return Page{}, ErrInvalidPage
	}
	// #nosec G115 -- bounds checked above
	return Page{Skip: int32(skip), Limit: int32(l)}, nil
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultListLimit}
}
