package treasure

import (
	"fmt"
	"math/rand"
)

// defaultGenSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultGenSeed int64 = 1

// Default inclusive generation bounds, applied when no range options are set.
const (
	defaultMinWeight = int64(1)
	defaultMaxWeight = int64(20)
	defaultMinValue  = int64(1)
	defaultMaxValue  = int64(100)
)

// GenOptions holds configurable parameters for treasure generation.
type GenOptions struct {
	// Seed drives the RNG; 0 selects defaultGenSeed so that default
	// configuration is still deterministic.
	Seed int64

	// MinWeight and MaxWeight bound generated weights (inclusive).
	MinWeight, MaxWeight int64

	// MinValue and MaxValue bound generated values (inclusive).
	MinValue, MaxValue int64
}

// Option configures optional behavior of a Generator.
type Option func(*GenOptions)

// DefaultGenOptions returns GenOptions with the fixed default seed policy
// and the default weight/value ranges.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		Seed:      0,
		MinWeight: defaultMinWeight,
		MaxWeight: defaultMaxWeight,
		MinValue:  defaultMinValue,
		MaxValue:  defaultMaxValue,
	}
}

// WithSeed returns an Option that sets the RNG seed.
// Policy: seed==0 ⇒ fixed default seed; otherwise used verbatim.
func WithSeed(seed int64) Option {
	return func(o *GenOptions) {
		o.Seed = seed
	}
}

// WithWeightRange returns an Option bounding generated weights to [lo, hi].
func WithWeightRange(lo, hi int64) Option {
	return func(o *GenOptions) {
		o.MinWeight, o.MaxWeight = lo, hi
	}
}

// WithValueRange returns an Option bounding generated values to [lo, hi].
func WithValueRange(lo, hi int64) Option {
	return func(o *GenOptions) {
		o.MinValue, o.MaxValue = lo, hi
	}
}

// Generator emits deterministic pseudo-random treasures with sequential IDs.
//
// math/rand.Rand is NOT goroutine-safe; do not share one Generator across
// goroutines. The solve path is single-threaded, so no locking is needed.
type Generator struct {
	rng    *rand.Rand
	opts   GenOptions
	nextID int
}

// NewGenerator validates the configured ranges and returns a Generator.
// Returns ErrBadRange when a range is empty (lo > hi) or lo ≤ 0.
// Complexity: O(len(opts)).
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := DefaultGenOptions()
	var fn Option
	for _, fn = range opts {
		fn(&cfg)
	}

	if cfg.MinWeight <= 0 || cfg.MaxWeight < cfg.MinWeight {
		return nil, fmt.Errorf("weight range [%d,%d]: %w", cfg.MinWeight, cfg.MaxWeight, ErrBadRange)
	}
	if cfg.MinValue <= 0 || cfg.MaxValue < cfg.MinValue {
		return nil, fmt.Errorf("value range [%d,%d]: %w", cfg.MinValue, cfg.MaxValue, ErrBadRange)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultGenSeed
	}

	return &Generator{
		rng:    rand.New(rand.NewSource(seed)),
		opts:   cfg,
		nextID: 1,
	}, nil
}

// Generate produces the next treasure in the stream.
// IDs are sequential starting at 1 and unique per Generator.
// Complexity: O(1).
func (g *Generator) Generate() Treasure {
	t := Treasure{
		ID:     g.nextID,
		Weight: g.opts.MinWeight + g.rng.Int63n(g.opts.MaxWeight-g.opts.MinWeight+1),
		Value:  g.opts.MinValue + g.rng.Int63n(g.opts.MaxValue-g.opts.MinValue+1),
	}
	g.nextID++

	return t
}

// GenerateN produces the next n treasures. For n ≤ 0 it returns an empty,
// non-nil slice.
// Complexity: O(n).
func (g *Generator) GenerateN(n int) []Treasure {
	if n < 0 {
		n = 0
	}
	out := make([]Treasure, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}

	return out
}
