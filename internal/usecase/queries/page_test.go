//go:build unit

package queries_test

import (
	"testing"

	"hotel-admin/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p, err := queries.NewPage(0, nil)
		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPage(), p)
	})

	valid := []struct {
		skip, limit int
	}{
		{0, 1},
		{5, 1000},
	}
	for _, v := range valid {
		p, err := queries.NewPage(v.skip, ptr(v.limit))
		require.NoError(t, err)
		assert.Equal(t, int32(v.skip), p.Skip)
		assert.Equal(t, int32(v.limit), p.Limit)
	}

	invalid := []struct {
		skip, limit int
	}{
		{-1, 10},
		{0, 0},
		{0, 1001},
	}
	for _, v := range invalid {
		_, err := queries.NewPage(v.skip, ptr(v.limit))
		assert.ErrorIs(t, err, queries.ErrInvalidPage, "skip=%d limit=%d", v.skip, v.limit)
	}
}
