package hollow

import (
	"errors"

	"github.com/katalvlaran/hollowmaze/treasure"
)

// ErrNoTreasure indicates the hollow is empty or no remaining treasure fits
// the offered capacity. It is ordinary control flow for collection, not a
// failure.
var ErrNoTreasure = errors.New("hollow: no viable treasure")

// Kind discriminates the two hollow variants.
type Kind int

const (
	// Spooky hollows own an exclusive per-cell treasure cache.
	SpookyKind Kind = iota
	// Mystical hollows share one pool across all linked cells.
	MysticalKind
)

// Hollow is a treasure trove embedded in a maze cell.
//
// TakeBest removes and returns the highest-ratio treasure whose weight fits
// capacity, or ErrNoTreasure. Removal is committed only when a viable
// treasure exists; rejected treasures stay in the container.
//
// Collect runs the full greedy protocol for one visit: treasures are taken
// in descending ratio order while they fit, skipped ones are not retried,
// and the new remaining capacity is returned alongside the accepted loot.
type Hollow interface {
	TakeBest(capacity int64) (treasure.Treasure, error)
	Collect(capacity int64) ([]treasure.Treasure, int64)
	Len() int
	Kind() Kind
}

// Select is the greedy knapsack kernel. Candidates must already be ordered
// by strictly descending ratio (ties resolved upstream); each is accepted
// iff its weight fits the remaining capacity, which only ever decreases.
// Returns the accepted subset in offer order and the final remaining
// capacity. Deterministic; never optimal beyond the fractional relaxation.
// Complexity: O(len(candidates)).
func Select(candidates []treasure.Treasure, capacity int64) ([]treasure.Treasure, int64) {
	accepted := make([]treasure.Treasure, 0, len(candidates))
	remaining := capacity
	for _, c := range candidates {
		if c.Weight > remaining {
			continue // skipped, never retried: capacity cannot grow back
		}
		accepted = append(accepted, c)
		remaining -= c.Weight
	}

	return accepted, remaining
}
