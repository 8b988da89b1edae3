package roomtype

import (
	"math"
	"strings"
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

// BaseRate is the nightly price before adjustments. Always strictly positive.
type BaseRate struct {
	value float64
}

func NewBaseRate(v float64) (BaseRate, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return BaseRate{}, ErrNonPositiveRate
	}
	return BaseRate{value: v}, nil
}

func (r BaseRate) Value() float64 { return r.value }
