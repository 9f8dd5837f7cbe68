package hollow

import (
	"github.com/katalvlaran/hollowmaze/maxheap"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Mystical is a pooled hollow: every maze cell linked to it shares the same
// underlying heap by reference. A removal triggered through any linked cell
// is visible to all of them for the remainder of the run.
type Mystical struct {
	pool *maxheap.Heap
}

// NewMystical heapifies ts into a shared pool.
// Complexity: O(n).
func NewMystical(ts []treasure.Treasure) *Mystical {
	return &Mystical{pool: maxheap.NewFromSlice(ts)}
}

// Len reports the number of treasures left in the shared pool.
func (m *Mystical) Len() int { return m.pool.Len() }

// Kind reports MysticalKind.
func (m *Mystical) Kind() Kind { return MysticalKind }

// TakeBest extracts treasures in descending ratio order until one fits
// capacity, then pushes the rejected ones back. Only the returned treasure
// leaves the pool. Returns ErrNoTreasure when the pool is empty or nothing
// fits.
// Complexity: O(log n) best case, O(n log n) worst.
func (m *Mystical) TakeBest(capacity int64) (treasure.Treasure, error) {
	var (
		rejected []treasure.Treasure
		chosen   treasure.Treasure
		found    bool
	)
	for m.pool.Len() > 0 {
		t, err := m.pool.ExtractMax()
		if err != nil {
			break // Len guard above makes this unreachable
		}
		if t.Weight <= capacity {
			chosen, found = t, true
			break
		}
		rejected = append(rejected, t)
	}

	// Re-pushing in extraction order keeps equal-ratio treasures FIFO.
	for _, t := range rejected {
		m.pool.Push(t)
	}

	if !found {
		return treasure.Treasure{}, ErrNoTreasure
	}

	return chosen, nil
}

// Collect drains the pool once, feeds the descending-ratio stream through
// Select, and returns the skipped treasures to the pool. Accepted treasures
// are permanently gone for every linked cell.
// Complexity: O(n log n).
func (m *Mystical) Collect(capacity int64) ([]treasure.Treasure, int64) {
	drained := make([]treasure.Treasure, 0, m.pool.Len())
	for m.pool.Len() > 0 {
		t, err := m.pool.ExtractMax()
		if err != nil {
			break
		}
		drained = append(drained, t)
	}

	accepted, remaining := Select(drained, capacity)

	// Push back everything not accepted, preserving extraction order so
	// relative tie order survives for the next visit.
	taken := make(map[int]bool, len(accepted))
	for _, t := range accepted {
		taken[t.ID] = true
	}
	for _, t := range drained {
		if !taken[t.ID] {
			m.pool.Push(t)
		}
	}

	return accepted, remaining
}
