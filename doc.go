// Package hollowmaze simulates the exploration of a grid maze stocked with
// collectible treasures: find an escape path from the entrance to any exit
// and decide, hollow by hollow, what is worth carrying.
//
// 🚀 What is hollowmaze?
//
//	A deterministic, single-threaded puzzle engine built from small packages:
//		• treasure/ — immutable Treasure values + seeded deterministic generator
//		• avltree/  — generic self-balancing BST backing spooky hollow caches
//		• maxheap/  — stable ratio-ordered max-heap backing mystical pools
//		• hollow/   — spooky & mystical hollows and the greedy knapsack selector
//		• maze/     — layout parsing, recursive DFS with backtracking, loot report
//
// ✨ Design guarantees
//
//   - Deterministic – fixed neighbor order, seeded generation, stable ties;
//     the same maze and seed always produce the same path and loot
//   - First exit wins – DFS backtracking, not shortest-path search
//   - Greedy, not optimal – treasure selection approximates 0/1 knapsack by
//     value-to-weight ratio on purpose; exact solvers would change output
//   - Pure Go algorithms – sentinel errors, no panics, context cancellation
//
// Quick ASCII example:
//
//	#######
//	#P  S #
//	# ## ##
//	#M   E#
//	#######
//
//	'P' entrance, 'E' exit, '#' wall, 'S' spooky hollow (exclusive cache),
//	'M' mystical hollow (pool shared by every 'M' cell).
//
//	go get github.com/katalvlaran/hollowmaze
package hollowmaze
