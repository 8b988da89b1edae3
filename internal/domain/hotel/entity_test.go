//go:build unit

package hotel_test

import (
	"testing"

	"hotel-admin/internal/domain/hotel"
	"hotel-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.HotelBuilder)
	errIs  error
}

func TestHotel(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewHotelBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, int64(0), actual.ID())
		assert.Equal(t, "Grand Budapest", actual.Name().String())
		assert.Equal(t, "Zubrowka", actual.Location().String())
		assert.True(t, actual.IsActive())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character name",
				mutate: func(b *builder.HotelBuilder) { b.WithName("A") },
			},
			{
				name:   "empty name",
				mutate: func(b *builder.HotelBuilder) { b.WithName("") },
				errIs:  hotel.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.HotelBuilder) { b.WithName("   ") },
				errIs:  hotel.ErrEmptyName,
			},
		})
	})

	t.Run("location validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty location",
				mutate: func(b *builder.HotelBuilder) { b.WithLocation("") },
				errIs:  hotel.ErrEmptyLocation,
			},
			{
				name:   "inactive hotel",
				mutate: func(b *builder.HotelBuilder) { b.AsInactive() },
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		h, err := hotel.NewHotel(7, "  Overlook  ", "Colorado", true)
		require.NoError(t, err)
		assert.Equal(t, "Overlook", h.Name().String())
		assert.Equal(t, int64(7), h.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewHotelBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
