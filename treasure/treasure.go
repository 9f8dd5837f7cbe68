package treasure

import (
	"errors"
	"fmt"
)

// Sentinel errors for treasure construction and generation.
var (
	// ErrNonPositiveWeight indicates a weight ≤ 0 was passed to New.
	ErrNonPositiveWeight = errors.New("treasure: weight must be positive")

	// ErrNonPositiveValue indicates a value ≤ 0 was passed to New.
	ErrNonPositiveValue = errors.New("treasure: value must be positive")

	// ErrBadRange indicates an empty or non-positive generation range.
	ErrBadRange = errors.New("treasure: invalid generation range")
)

// Treasure is an immutable collectible: a unique ID plus a positive
// weight and value. The value-to-weight ratio is derived, never stored,
// so it can never disagree with Weight and Value.
type Treasure struct {
	// ID uniquely identifies this treasure within one run.
	ID int

	// Weight is the carry cost counted against backpack capacity.
	Weight int64

	// Value is the worth of the treasure.
	Value int64
}

// New validates and constructs a Treasure.
// Returns ErrNonPositiveWeight or ErrNonPositiveValue on bad input.
// Complexity: O(1).
func New(id int, weight, value int64) (Treasure, error) {
	if weight <= 0 {
		return Treasure{}, fmt.Errorf("treasure %d: weight %d: %w", id, weight, ErrNonPositiveWeight)
	}
	if value <= 0 {
		return Treasure{}, fmt.Errorf("treasure %d: value %d: %w", id, value, ErrNonPositiveValue)
	}

	return Treasure{ID: id, Weight: weight, Value: value}, nil
}

// Ratio reports the value-to-weight ratio, the greedy selector's sort key.
// Complexity: O(1).
func (t Treasure) Ratio() float64 {
	return float64(t.Value) / float64(t.Weight)
}

// String renders the treasure for logs and debugging output.
func (t Treasure) String() string {
	return fmt.Sprintf("treasure#%d{w:%d v:%d r:%.3f}", t.ID, t.Weight, t.Value, t.Ratio())
}
