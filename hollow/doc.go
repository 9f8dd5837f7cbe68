// Package hollow implements treasure hollows — maze cells holding
// collectible loot — and the greedy selector that decides what to carry.
//
// Two variants share one contract but differ in ownership:
//
//   - Spooky: the treasure container (an avltree keyed by treasure ID) is
//     exclusive to a single cell. No other cell can see or drain it.
//   - Mystical: one maxheap pool shared by reference across every linked
//     cell. Whichever cell is visited first can deplete treasures a later
//     visit to a different linked cell would otherwise have seen; each
//     treasure is removed exactly once, regardless of which cell takes it.
//
// Selection is a greedy knapsack approximation: candidates are offered in
// strictly descending ratio order (ties by earliest insertion / lowest ID),
// each accepted iff its weight fits the remaining capacity, rejected ones
// are skipped and never retried within the visit. For indivisible treasures
// this is a heuristic with no optimality guarantee; the behavior is part of
// the observable contract and must not be replaced by an exact solver.
//
// Complexity:
//
//   - Spooky.TakeBest:   O(log n) best case (max-ratio fits), O(n) worst.
//   - Mystical.TakeBest: O(log n) best case, O(n log n) worst.
//   - Collect:           O(n log n) per visit for either variant.
//
// Errors:
//
//   - ErrNoTreasure   the hollow is empty or nothing fits the capacity;
//     callers treat this as "nothing left to collect", never as a failure.
package hollow
