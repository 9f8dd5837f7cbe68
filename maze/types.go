// Package maze defines grid types, layout symbols, sentinel errors, and
// functional options for parsing and solving.
package maze

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// Layout symbols recognized by Parse.
const (
	TileOpen     = ' '
	TileWall     = '#'
	TileEntrance = 'P'
	TileExit     = 'E'
	TileSpooky   = 'S'
	TileMystical = 'M'
)

// Sentinel errors for maze construction and solving.
var (
	// ErrEmptyGrid indicates the layout has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: layout must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrNoEntrance indicates the layout lacks the 'P' tile.
	ErrNoEntrance = errors.New("maze: no entrance in layout")

	// ErrMultipleEntrances indicates more than one 'P' tile.
	ErrMultipleEntrances = errors.New("maze: multiple entrances in layout")

	// ErrNoExit indicates the layout lacks any 'E' tile.
	ErrNoExit = errors.New("maze: no exit in layout")

	// ErrNoHollow indicates the layout holds no treasure hollow tile.
	ErrNoHollow = errors.New("maze: no hollow in layout")

	// ErrUnknownTile indicates a symbol outside the recognized set.
	ErrUnknownTile = errors.New("maze: unknown tile in layout")

	// ErrNoPath indicates DFS exhausted the entrance's reachable component
	// without finding an exit. It is the solve result, not a fatal abort.
	ErrNoPath = errors.New("maze: no path to any exit")

	// ErrBadPath indicates a caller-supplied path leaves the grid.
	ErrBadPath = errors.New("maze: path position out of bounds")
)

// Position is a grid coordinate.
type Position struct {
	Row, Col int
}

// String renders the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// CellKind classifies the terrain of one cell.
type CellKind int

const (
	// Open is walkable terrain with nothing on it.
	Open CellKind = iota
	// Wall blocks traversal.
	Wall
	// Entrance is the unique DFS start cell.
	Entrance
	// Exit terminates a successful solve.
	Exit
	// HollowSite is a walkable cell holding a treasure hollow.
	HollowSite
)

// Cell is one grid square. Hollow is non-nil only for HollowSite cells;
// mystical cells reference (not own) their shared pool. visited is
// traversal-scoped and reset at the start of every Solve call.
type Cell struct {
	Pos     Position
	Kind    CellKind
	Hollow  hollow.Hollow
	visited bool
}

// directionOffsets is the fixed neighbor exploration order: up, down,
// left, right. The order is load-bearing for deterministic solving.
var directionOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// defaultTreasuresPerHollow is the stock handed to each hollow at parse
// time when WithTreasuresPerHollow is not given.
const defaultTreasuresPerHollow = 5

// defaultBackpackCapacity bounds collected weight when WithCapacity is not
// given.
const defaultBackpackCapacity = int64(20)

// ParseOption configures layout parsing.
type ParseOption func(*ParseOptions)

// ParseOptions holds configurable parameters for Parse.
type ParseOptions struct {
	// Gen supplies treasures for hollow construction. Nil selects a
	// deterministic default generator, so parsing is reproducible.
	Gen *treasure.Generator

	// TreasuresPerHollow is the batch size generated for each spooky cache
	// and once for the shared mystical pool.
	TreasuresPerHollow int
}

// DefaultParseOptions returns ParseOptions with a nil generator (resolved
// to the deterministic default inside Parse) and the default hollow stock.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Gen:                nil,
		TreasuresPerHollow: defaultTreasuresPerHollow,
	}
}

// WithGenerator returns a ParseOption that installs g as the treasure
// source. Passing nil has no effect (the default is retained).
func WithGenerator(g *treasure.Generator) ParseOption {
	return func(o *ParseOptions) {
		if g != nil {
			o.Gen = g
		}
	}
}

// WithTreasuresPerHollow returns a ParseOption setting the per-hollow
// treasure batch size. Non-positive n has no effect.
func WithTreasuresPerHollow(n int) ParseOption {
	return func(o *ParseOptions) {
		if n > 0 {
			o.TreasuresPerHollow = n
		}
	}
}

// SolveOption configures optional behavior of Solve.
type SolveOption func(*SolveOptions)

// SolveOptions holds configurable parameters for one solve attempt.
type SolveOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Capacity is the backpack weight budget for hollow collection.
	Capacity int64

	// Collect enables the hollow collection protocol during traversal.
	Collect bool

	// OnVisit, if non-nil, is invoked when a cell is first entered
	// (pre-order). Returning an error aborts the solve with that error.
	OnVisit func(p Position) error
}

// DefaultSolveOptions returns SolveOptions with a background context, the
// default backpack capacity, and collection enabled.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Ctx:      context.Background(),
		Capacity: defaultBackpackCapacity,
		Collect:  true,
		OnVisit:  nil,
	}
}

// WithContext returns a SolveOption that sets the context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) SolveOption {
	return func(o *SolveOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCapacity returns a SolveOption setting the backpack capacity.
// Negative capacity is clamped to zero.
func WithCapacity(w int64) SolveOption {
	return func(o *SolveOptions) {
		if w < 0 {
			w = 0
		}
		o.Capacity = w
	}
}

// WithoutCollection returns a SolveOption that disables treasure
// collection, leaving every hollow untouched during the solve.
func WithoutCollection() SolveOption {
	return func(o *SolveOptions) {
		o.Collect = false
	}
}

// WithOnVisit returns a SolveOption installing fn as a pre-order hook.
func WithOnVisit(fn func(p Position) error) SolveOption {
	return func(o *SolveOptions) {
		o.OnVisit = fn
	}
}

// Result captures a successful solve: the entrance-to-exit path, the loot
// committed along it, and the capacity left over.
type Result struct {
	// Path lists cell coordinates from the entrance to the reached exit.
	// Consecutive entries are orthogonal neighbors; none is a wall.
	Path []Position

	// Loot lists every treasure committed during traversal, in collection
	// order. Collection is irreversible: treasures gathered on abandoned
	// branches stay collected.
	Loot []treasure.Treasure

	// Remaining is the backpack capacity left after collection.
	Remaining int64
}

// LootByID reports the accumulated loot keyed by treasure ID.
func (r *Result) LootByID() map[int]treasure.Treasure {
	out := make(map[int]treasure.Treasure, len(r.Loot))
	for _, t := range r.Loot {
		out[t.ID] = t
	}

	return out
}

// TotalWeight sums the weight of the collected loot.
func (r *Result) TotalWeight() int64 {
	var sum int64
	for _, t := range r.Loot {
		sum += t.Weight
	}

	return sum
}

// TotalValue sums the value of the collected loot.
func (r *Result) TotalValue() int64 {
	var sum int64
	for _, t := range r.Loot {
		sum += t.Value
	}

	return sum
}
