// Package clock decides what "now" and "today" mean for rate lookups.
package clock

import (
	"fmt"
	"time"
)

type Clock interface {
	Now() time.Time
}

// RealClock reports wall time in the business time zone, so the calendar
// day of Now() is the hotel's "today" rather than the server's.
type RealClock struct {
	loc *time.Location
}

func NewRealClock(tz string) (*RealClock, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load business time zone %q: %w", tz, err)
	}
	return &RealClock{loc: loc}, nil
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests that depend on "today".
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time { return c.current }

func (c *MockClock) Set(t time.Time) { c.current = t }

func (c *MockClock) AddDays(days int) {
	c.current = c.current.AddDate(0, 0, days)
}
