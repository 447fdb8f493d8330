package sfcgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sfcgo/testutil"
)

func TestTableTiers(t *testing.T) {
	// 2^8 points: 1-byte tier, materialized even with a zero budget.
	c, err := NewHilbert(2, 16, WithTableBudget(0))
	require.NoError(t, err)
	assert.True(t, c.Stored())

	// 2^9 points: 2-byte tier, same.
	c, err = NewHilbert(3, 8, WithTableBudget(0))
	require.NoError(t, err)
	assert.True(t, c.Stored())

	// 2^18 points: 4-byte tier, gated by the budget.
	c, err = NewHilbert(3, 64)
	require.NoError(t, err)
	assert.True(t, c.Stored())

	c, err = NewHilbert(3, 64, WithTableBudget(1<<18))
	require.NoError(t, err)
	assert.True(t, c.Stored())

	c, err = NewHilbert(3, 64, WithTableBudget(1<<18-1))
	require.NoError(t, err)
	assert.False(t, c.Stored())

	// Beyond 2^32 points no table is built regardless of budget.
	c, err = NewHilbert(2, 1<<20, WithTableBudget(1<<62))
	require.NoError(t, err)
	assert.False(t, c.Stored())
}

func TestStoredConcurrentQueries(t *testing.T) {
	c, err := NewHilbert(3, 32)
	require.NoError(t, err)
	require.True(t, c.Stored())

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		seed := int64(100 + w)
		g.Go(func() error {
			rng := testutil.NewRNG(seed)
			p := make([]int, 3)
			for i := 0; i < 2000; i++ {
				d := rng.Int63n(c.MaxDistance())
				c.Alter(p, d)
				if got := c.Distance(p); got != d {
					t.Errorf("distance %d round-tripped to %d", d, got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
