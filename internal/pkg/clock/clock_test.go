//go:build unit

package clock_test

import (
	"testing"
	"time"

	"hotel-admin/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock(t *testing.T) {
	t.Run("reports time in the configured zone", func(t *testing.T) {
		c, err := clock.NewRealClock("Asia/Tokyo")
		require.NoError(t, err)

		assert.Equal(t, "Asia/Tokyo", c.Now().Location().String())
	})

	t.Run("unknown zone is rejected", func(t *testing.T) {
		_, err := clock.NewRealClock("Mars/Olympus_Mons")
		assert.Error(t, err)
	})
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	c.AddDays(1)
	assert.Equal(t, 16, c.Now().Day())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
