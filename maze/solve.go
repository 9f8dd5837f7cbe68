package maze

import (
	"fmt"

	"github.com/katalvlaran/hollowmaze/hollow"
	"github.com/katalvlaran/hollowmaze/treasure"
)

// solveWalker encapsulates state during one DFS solve attempt.
type solveWalker struct {
	m         *Maze        // underlying maze
	opts      SolveOptions // traversal options
	path      []Position   // active backtracking stack
	loot      []treasure.Treasure
	remaining int64
}

// Solve performs recursive depth-first search from the entrance and
// returns the first path that reaches an exit, together with the loot
// committed along the way and the leftover capacity.
//
// Neighbors are explored in the fixed order up, down, left, right and the
// first exit found wins, so repeated solves of an unmodified maze walk the
// identical path. Visited markers are reset here and then kept for the
// whole attempt, including across backtracks, which bounds recursion depth
// by the cell count.
//
// Returns ErrNoPath after exhausting the entrance's reachable component,
// or the context error when cancelled via WithContext.
// Complexity: O(R×C) expansions plus hollow collection cost.
func (m *Maze) Solve(opts ...SolveOption) (*Result, error) {
	cfg := DefaultSolveOptions()
	var fn SolveOption
	for _, fn = range opts {
		fn(&cfg)
	}

	// 1. Reset traversal-scoped state from any previous attempt.
	for r := range m.grid {
		for c := range m.grid[r] {
			m.grid[r][c].visited = false
		}
	}

	w := &solveWalker{m: m, opts: cfg, remaining: cfg.Capacity}

	// 2. Recurse from the entrance.
	found, err := w.traverse(m.entrance)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoPath
	}

	return &Result{Path: w.path, Loot: w.loot, Remaining: w.remaining}, nil
}

// traverse visits p, recursing into unvisited non-wall neighbors.
// It reports whether an exit was reached below (or at) p.
func (w *solveWalker) traverse(p Position) (bool, error) {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	cell := &w.m.grid[p.Row][p.Col]

	// 2. Mark visited and push onto the path stack.
	cell.visited = true
	w.path = append(w.path, p)

	// 3. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			return false, fmt.Errorf("maze: OnVisit hook for %v: %w", p, err)
		}
	}

	// 4. Exit check: first found wins, unwind immediately.
	if cell.Kind == Exit {
		return true, nil
	}

	// 5. Hollow collection before descending further. Commits are
	// irreversible: backtracking out of this branch keeps the loot.
	if cell.Kind == HollowSite && w.opts.Collect {
		w.collect(cell.Hollow)
	}

	// 6. Explore neighbors in fixed compass order.
	for _, d := range directionOffsets {
		next := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !w.passable(next) {
			continue
		}
		found, err := w.traverse(next)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// 7. Dead end: pop the path stack; the visited marker stays set.
	w.path = w.path[:len(w.path)-1]

	return false, nil
}

// passable reports whether next can be entered: inside the grid, not a
// wall, and not yet visited in this attempt.
func (w *solveWalker) passable(next Position) bool {
	if !w.m.InBounds(next) {
		return false
	}
	cell := &w.m.grid[next.Row][next.Col]

	return cell.Kind != Wall && !cell.visited
}

// collect runs the greedy protocol against h with the walker's remaining
// capacity and commits the result. A hollow with nothing viable is simply
// "nothing left to collect".
func (w *solveWalker) collect(h hollow.Hollow) {
	if h == nil || w.remaining <= 0 {
		return
	}
	taken, remaining := h.Collect(w.remaining)
	w.loot = append(w.loot, taken...)
	w.remaining = remaining
}

// CollectAlong replays the collection protocol over an already-found path,
// for callers that solved with WithoutCollection and want loot as a
// separate pass. Cells outside the path are never touched.
// Returns the loot in path order and the leftover capacity.
func (m *Maze) CollectAlong(path []Position, capacity int64) ([]treasure.Treasure, int64, error) {
	var loot []treasure.Treasure
	remaining := capacity
	for _, p := range path {
		cell, ok := m.At(p)
		if !ok {
			return nil, remaining, fmt.Errorf("position %v: %w", p, ErrBadPath)
		}
		if cell.Kind != HollowSite || cell.Hollow == nil || remaining <= 0 {
			continue
		}
		taken, rem := cell.Hollow.Collect(remaining)
		loot = append(loot, taken...)
		remaining = rem
	}

	return loot, remaining, nil
}
