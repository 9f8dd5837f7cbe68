// Package maze models a rectangular grid maze with walls, one entrance,
// one or more exits, and treasure hollows, and solves it by recursive
// depth-first search with backtracking.
//
// What:
//
//   - Parse/Load/LoadFile build a Maze from a symbol grid ('P' entrance,
//     'E' exit, '#' wall, 'S' spooky hollow, 'M' mystical hollow, space
//     open). Every 'S' cell gets its own treasure cache; all 'M' cells
//     share one pool, so a treasure taken through any of them is gone for
//     the rest.
//   - Solve walks from the entrance in the fixed neighbor order up, down,
//     left, right and returns the first path that reaches an exit. This
//     first-found policy and the fixed order are load-bearing for
//     determinism; Solve is not a shortest-path search.
//   - Entering a hollow cell runs the greedy collection protocol against
//     the remaining backpack capacity. Collection commits immediately:
//     backtracking out of a hollow does not return the loot.
//   - Visited markers are monotonic within one Solve call (kept on
//     backtrack), bounding the search by the cell count; they are reset at
//     the start of every call.
//
// Complexity:
//
//   - Parse:  O(R×C) plus hollow construction.
//   - Solve:  O(R×C) cell expansions; each hollow visit costs
//     O(n log n) in its treasure count.
//
// Options:
//
//   - Parse: WithGenerator(g), WithTreasuresPerHollow(n).
//   - Solve: WithContext(ctx), WithCapacity(w), WithoutCollection(),
//     WithOnVisit(fn).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNoEntrance, ErrMultipleEntrances,
//     ErrNoExit, ErrNoHollow, ErrUnknownTile — construction failures; a
//     maze that fails validation is never built, so a solve cannot start.
//   - ErrNoPath — the entrance's reachable component holds no exit. This is
//     the solve result for a sealed maze, not an abort.
//   - context.Canceled / DeadlineExceeded — via WithContext.
package maze
