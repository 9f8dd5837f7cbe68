package hollow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

func mk(t *testing.T, id int, w, v int64) treasure.Treasure {
	t.Helper()
	tr, err := treasure.New(id, w, v)
	require.NoError(t, err)

	return tr
}

func ids(ts []treasure.Treasure) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}

	return out
}

// greedyFixture is the canonical knapsack vector: ratios 5,5,3,1 with
// weights 2,3,4,10. Capacity 5 fits exactly the two ratio-5 treasures.
func greedyFixture(t *testing.T) []treasure.Treasure {
	t.Helper()

	return []treasure.Treasure{
		mk(t, 1, 2, 10),
		mk(t, 2, 3, 15),
		mk(t, 3, 4, 12),
		mk(t, 4, 10, 10),
	}
}

func TestSelect_GreedyVector(t *testing.T) {
	accepted, remaining := hollow.Select(greedyFixture(t), 5)
	assert.Equal(t, []int{1, 2}, ids(accepted))
	assert.Equal(t, int64(0), remaining)

	var total int64
	for _, a := range accepted {
		total += a.Weight
	}
	assert.LessOrEqual(t, total, int64(5), "accepted weight must never exceed capacity")
}

func TestSelect_SkipsWithoutRetry(t *testing.T) {
	// The heavy high-ratio item is rejected; the lighter rest still get
	// their offer in order.
	candidates := []treasure.Treasure{
		mk(t, 1, 9, 90), // ratio 10, too heavy
		mk(t, 2, 3, 9),  // ratio 3
		mk(t, 3, 2, 2),  // ratio 1
	}
	accepted, remaining := hollow.Select(candidates, 5)
	assert.Equal(t, []int{2, 3}, ids(accepted))
	assert.Equal(t, int64(0), remaining)
}

func TestSelect_EmptyAndNothingFits(t *testing.T) {
	accepted, remaining := hollow.Select(nil, 5)
	assert.Empty(t, accepted)
	assert.Equal(t, int64(5), remaining)

	accepted, remaining = hollow.Select([]treasure.Treasure{mk(t, 1, 6, 6)}, 5)
	assert.Empty(t, accepted)
	assert.Equal(t, int64(5), remaining)
}

func TestSpooky_TakeBestPrefersRatioThatFits(t *testing.T) {
	s, err := hollow.NewSpooky([]treasure.Treasure{
		mk(t, 1, 9, 90), // ratio 10, too heavy for capacity 5
		mk(t, 2, 3, 9),  // ratio 3, fits
		mk(t, 3, 2, 2),  // ratio 1
	})
	require.NoError(t, err)
	assert.Equal(t, hollow.SpookyKind, s.Kind())

	got, err := s.TakeBest(5)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID, "heaviest treasure must be skipped, not taken")
	assert.Equal(t, 2, s.Len(), "exactly one treasure removed")
}

func TestSpooky_TakeBestNothingFits(t *testing.T) {
	s, err := hollow.NewSpooky([]treasure.Treasure{mk(t, 1, 8, 8)})
	require.NoError(t, err)

	_, err = s.TakeBest(5)
	assert.ErrorIs(t, err, hollow.ErrNoTreasure)
	assert.Equal(t, 1, s.Len(), "no removal without a viable treasure")

	empty, err := hollow.NewSpooky(nil)
	require.NoError(t, err)
	_, err = empty.TakeBest(100)
	assert.ErrorIs(t, err, hollow.ErrNoTreasure)
}

func TestSpooky_TakeBestTieLowestID(t *testing.T) {
	s, err := hollow.NewSpooky([]treasure.Treasure{
		mk(t, 9, 2, 10),
		mk(t, 4, 2, 10), // same ratio 5, lower ID wins
	})
	require.NoError(t, err)

	got, err := s.TakeBest(10)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ID)
}

func TestSpooky_CollectGreedyVector(t *testing.T) {
	s, err := hollow.NewSpooky(greedyFixture(t))
	require.NoError(t, err)

	accepted, remaining := s.Collect(5)
	assert.Equal(t, []int{1, 2}, ids(accepted))
	assert.Equal(t, int64(0), remaining)
	assert.Equal(t, 2, s.Len(), "rejected treasures stay in the cache")

	// A later visit with more capacity can still reach the leftovers.
	accepted, remaining = s.Collect(14)
	assert.Equal(t, []int{3, 4}, ids(accepted))
	assert.Equal(t, int64(0), remaining)
	assert.Zero(t, s.Len())
}

func TestMystical_TakeBestRestoresRejected(t *testing.T) {
	m := hollow.NewMystical([]treasure.Treasure{
		mk(t, 1, 9, 90), // ratio 10, too heavy
		mk(t, 2, 3, 9),  // ratio 3
	})
	assert.Equal(t, hollow.MysticalKind, m.Kind())

	got, err := m.TakeBest(5)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, 1, m.Len(), "rejected treasure must return to the pool")

	// The heavy one is still retrievable once capacity allows.
	got, err = m.TakeBest(9)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
	assert.Zero(t, m.Len())
}

func TestMystical_TakeBestNothingFits(t *testing.T) {
	m := hollow.NewMystical([]treasure.Treasure{mk(t, 1, 8, 8), mk(t, 2, 7, 7)})

	_, err := m.TakeBest(5)
	assert.ErrorIs(t, err, hollow.ErrNoTreasure)
	assert.Equal(t, 2, m.Len(), "pool unchanged when nothing fits")
}

func TestMystical_CollectGreedyVector(t *testing.T) {
	m := hollow.NewMystical(greedyFixture(t))

	accepted, remaining := m.Collect(5)
	assert.Equal(t, []int{1, 2}, ids(accepted))
	assert.Equal(t, int64(0), remaining)
	assert.Equal(t, 2, m.Len())
}

func TestMystical_SharedPoolDepletion(t *testing.T) {
	// Two cells linked to one pool: what cell A takes, cell B can no
	// longer see.
	pool := hollow.NewMystical([]treasure.Treasure{
		mk(t, 1, 2, 10), // ratio 5
		mk(t, 2, 2, 4),  // ratio 2
	})
	cellA, cellB := pool, pool

	got, err := cellA.TakeBest(10)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)

	got, err = cellB.TakeBest(10)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID, "T1 must be gone for every linked cell")

	_, err = cellB.TakeBest(10)
	assert.ErrorIs(t, err, hollow.ErrNoTreasure)
}
