package hollow

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/hollowmaze/avltree"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Spooky holds treasures found nowhere else in the maze. The backing tree
// is keyed by treasure ID (unique), not ratio, so best-ratio retrieval is
// an ordered scan rather than a root lookup.
type Spooky struct {
	tree *avltree.Tree[int, treasure.Treasure]
}

// NewSpooky builds a balanced per-cell cache from ts.
// Complexity: O(n log n).
func NewSpooky(ts []treasure.Treasure) (*Spooky, error) {
	pairs := make([]avltree.Pair[int, treasure.Treasure], 0, len(ts))
	for _, t := range ts {
		pairs = append(pairs, avltree.Pair[int, treasure.Treasure]{Key: t.ID, Value: t})
	}
	tree, err := avltree.NewFromSlice(pairs)
	if err != nil {
		return nil, fmt.Errorf("spooky hollow: %w", err)
	}

	return &Spooky{tree: tree}, nil
}

// Len reports the number of treasures left in the cache.
func (s *Spooky) Len() int { return s.tree.Len() }

// Kind reports SpookyKind.
func (s *Spooky) Kind() Kind { return SpookyKind }

// TakeBest removes and returns the highest-ratio treasure with weight ≤
// capacity. Ratio ties go to the lowest ID (the in-order walk ascends by ID
// and only a strictly better ratio displaces the current pick). Returns
// ErrNoTreasure when the cache is empty or nothing fits; the cache is left
// untouched in that case.
// Complexity: O(n) scan + O(log n) removal.
func (s *Spooky) TakeBest(capacity int64) (treasure.Treasure, error) {
	var (
		best  treasure.Treasure
		found bool
	)
	s.tree.InOrder(func(_ int, t treasure.Treasure) bool {
		if t.Weight <= capacity && (!found || t.Ratio() > best.Ratio()) {
			best, found = t, true
		}

		return true
	})
	if !found {
		return treasure.Treasure{}, ErrNoTreasure
	}

	if _, err := s.tree.Remove(best.ID); err != nil {
		// The key was just observed by the walk; a miss here is a bug.
		return treasure.Treasure{}, fmt.Errorf("spooky hollow: %w", err)
	}

	return best, nil
}

// Collect runs the greedy protocol for one visit: candidates in descending
// ratio (ties by lowest ID), accepted iff they fit, accepted ones removed
// from the cache at commit time.
// Complexity: O(n log n).
func (s *Spooky) Collect(capacity int64) ([]treasure.Treasure, int64) {
	candidates := make([]treasure.Treasure, 0, s.tree.Len())
	s.tree.InOrder(func(_ int, t treasure.Treasure) bool {
		candidates = append(candidates, t)

		return true
	})
	// Stable sort over the ID-ascending walk keeps lowest-ID-first ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Ratio() > candidates[j].Ratio()
	})

	accepted, remaining := Select(candidates, capacity)
	for _, t := range accepted {
		// Accepted treasures came from the walk above; the key cannot miss.
		_, _ = s.tree.Remove(t.ID)
	}

	return accepted, remaining
}
