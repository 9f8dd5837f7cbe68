// Package maxheap implements an array-backed binary max-heap of treasures
// ordered by value-to-weight ratio. It backs the shared Mystical hollow pools.
//
// What:
//
//   - Push appends and sifts up; ExtractMax swaps the root with the last
//     element, shrinks, and sifts down; PeekMax inspects without removal.
//   - Equal ratios are broken by insertion order (stable, FIFO), so
//     extraction order is fully deterministic.
//   - NewFromSlice heapifies a batch bottom-up in O(n).
//   - No arbitrary-key deletion: treasures leave only via ExtractMax.
//
// Complexity:
//
//   - Push, ExtractMax:  O(log n).
//   - PeekMax, Len:      O(1).
//   - NewFromSlice:      O(n).
//
// Errors:
//
//   - ErrEmptyHeap   PeekMax or ExtractMax on an empty heap.
package maxheap
