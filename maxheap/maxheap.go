package maxheap

import (
	"errors"

	"github.com/katalvlaran/hollowmaze/treasure"
)

// ErrEmptyHeap indicates PeekMax or ExtractMax was called on an empty heap.
var ErrEmptyHeap = errors.New("maxheap: heap is empty")

// entry pairs a treasure with its insertion sequence number.
// seq breaks ratio ties so extraction order is stable and deterministic.
type entry struct {
	t   treasure.Treasure
	seq uint64
}

// Heap is an array-backed binary max-heap keyed by treasure ratio.
// The zero value is a ready-to-use empty heap.
type Heap struct {
	items   []entry
	nextSeq uint64
}

// New returns an empty heap with room for hint items.
func New(hint int) *Heap {
	if hint < 0 {
		hint = 0
	}

	return &Heap{items: make([]entry, 0, hint)}
}

// NewFromSlice builds a heap over ts with bottom-up heapify.
// Sequence numbers follow slice order, so equal-ratio treasures extract
// in their original order.
// Complexity: O(n).
func NewFromSlice(ts []treasure.Treasure) *Heap {
	h := New(len(ts))
	for _, t := range ts {
		h.items = append(h.items, entry{t: t, seq: h.nextSeq})
		h.nextSeq++
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len reports the number of stored treasures. Complexity: O(1).
func (h *Heap) Len() int { return len(h.items) }

// Push inserts t, keeping the heap property. Complexity: O(log n).
func (h *Heap) Push(t treasure.Treasure) {
	h.items = append(h.items, entry{t: t, seq: h.nextSeq})
	h.nextSeq++
	h.siftUp(len(h.items) - 1)
}

// PeekMax returns the best-ratio treasure without removing it.
// Returns ErrEmptyHeap on an empty heap. Complexity: O(1).
func (h *Heap) PeekMax() (treasure.Treasure, error) {
	if len(h.items) == 0 {
		return treasure.Treasure{}, ErrEmptyHeap
	}

	return h.items[0].t, nil
}

// ExtractMax removes and returns the best-ratio treasure.
// Returns ErrEmptyHeap on an empty heap. Complexity: O(log n).
func (h *Heap) ExtractMax() (treasure.Treasure, error) {
	n := len(h.items)
	if n == 0 {
		return treasure.Treasure{}, ErrEmptyHeap
	}

	top := h.items[0].t
	h.items[0] = h.items[n-1]
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return top, nil
}

// above reports whether items[i] outranks items[j]: strictly higher ratio,
// or equal ratio with the earlier insertion sequence.
func (h *Heap) above(i, j int) bool {
	ri, rj := h.items[i].t.Ratio(), h.items[j].t.Ratio()
	if ri != rj {
		return ri > rj
	}

	return h.items[i].seq < h.items[j].seq
}

// siftUp bubbles items[i] toward the root while it outranks its parent.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.above(i, parent) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown sinks items[i] below any outranking child.
func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		if l := 2*i + 1; l < n && h.above(l, best) {
			best = l
		}
		if r := 2*i + 2; r < n && h.above(r, best) {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
