// Package minheap provides a binary min-heap with stable handles and
// decrease-key support, the priority queue backing Dijkstra, A*, and Prim.
//
// Every Push returns a Handle that stays valid while the element is live,
// even though the element's position in the underlying array changes on every
// heap mutation. A Handle is a slot index plus a generation counter; once the
// element is popped the generation advances, so the old Handle is reported
// stale instead of silently aliasing a reused slot.
//
// Complexity:
//
//   - Push:        O(log n)
//   - Pop:         O(log n)
//   - DecreaseKey: O(log n)
//   - Peek, Contains, Len: O(1)
//
// Errors:
//
//	ErrEmptyHeap     - Pop or Peek on an empty heap.
//	ErrStaleHandle   - the handle's element was already removed; callers
//	                   recover by pushing a fresh entry (lazy deletion).
//	ErrKeyNotSmaller - DecreaseKey may only lower a key, never raise it.
package minheap

import "errors"

// Sentinel errors for heap protocol violations.
var (
	// ErrEmptyHeap indicates Pop or Peek was called on an empty heap.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrStaleHandle indicates the handle no longer refers to a live element.
	ErrStaleHandle = errors.New("minheap: stale handle")

	// ErrKeyNotSmaller indicates DecreaseKey was given a key that does not
	// strictly lower the element's current key.
	ErrKeyNotSmaller = errors.New("minheap: new key is not smaller")
)

// Handle is an opaque, stable reference to a live heap element.
// The zero Handle is never valid.
type Handle struct {
	slot int
	gen  uint64
}

// entry pairs an element with its arena slot so swaps can keep the
// slot→position index current.
type entry[T any] struct {
	item T
	slot int
}

// slotState tracks where a slot's element currently sits in the heap array
// and which generation of handle may touch it.
type slotState struct {
	pos  int
	gen  uint64
	live bool
}

// Heap is a binary min-heap ordered by a caller-supplied strict-weak-order
// less function. Secondary tie-breaking, where needed, belongs in less
// (A* compares f-score, then g-score).
//
// A Heap instance is not safe for concurrent use.
type Heap[T any] struct {
	less  func(a, b T) bool
	data  []entry[T]
	slots []slotState
	free  []int
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of live elements.
func (h *Heap[T]) Len() int { return len(h.data) }

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool { return len(h.data) == 0 }

// Push inserts v and returns a Handle for later DecreaseKey/Contains calls.
func (h *Heap[T]) Push(v T) Handle {
	var slot int
	if n := len(h.free); n > 0 {
		slot = h.free[n-1]
		h.free = h.free[:n-1]
	} else {
		slot = len(h.slots)
		h.slots = append(h.slots, slotState{})
	}

	h.slots[slot].pos = len(h.data)
	h.slots[slot].live = true
	h.data = append(h.data, entry[T]{item: v, slot: slot})
	h.siftUp(len(h.data) - 1)

	return Handle{slot: slot, gen: h.slots[slot].gen}
}

// Pop removes and returns the minimum element.
// Callers must check Empty first; popping an empty heap returns ErrEmptyHeap.
func (h *Heap[T]) Pop() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	root := h.data[0]
	h.release(root.slot)

	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if last > 0 {
		h.slots[h.data[0].slot].pos = 0
		h.siftDown(0)
	}

	return root.item, nil
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.data[0].item, nil
}

// Contains reports whether hd still refers to a live element.
func (h *Heap[T]) Contains(hd Handle) bool {
	return hd.slot >= 0 && hd.slot < len(h.slots) &&
		h.slots[hd.slot].live && h.slots[hd.slot].gen == hd.gen
}

// DecreaseKey lowers the key of the element referenced by hd to v.
//
// Returns ErrStaleHandle if the element was already removed — the caller is
// expected to fall back to a fresh Push and rely on staleness checks at pop
// time (lazy deletion). Returns ErrKeyNotSmaller if v does not strictly
// lower the current key; the element is left untouched.
func (h *Heap[T]) DecreaseKey(hd Handle, v T) error {
	if !h.Contains(hd) {
		return ErrStaleHandle
	}

	idx := h.slots[hd.slot].pos
	if !h.less(v, h.data[idx].item) {
		return ErrKeyNotSmaller
	}

	h.data[idx].item = v
	h.siftUp(idx)

	return nil
}

// release retires a slot: the generation advances so any outstanding handle
// for it becomes stale, and the slot returns to the free list for reuse.
func (h *Heap[T]) release(slot int) {
	h.slots[slot].live = false
	h.slots[slot].gen++
	h.free = append(h.free, slot)
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.slots[h.data[i].slot].pos = i
	h.slots[h.data[j].slot].pos = j
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i].item, h.data[parent].item) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(h.data[l].item, h.data[smallest].item) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(h.data[r].item, h.data[smallest].item) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// ValidateInvariant reports whether the heap ordering and the slot index are
// both intact. Intended for tests.
func (h *Heap[T]) ValidateInvariant() bool {
	for i := range h.data {
		if l := 2*i + 1; l < len(h.data) && h.less(h.data[l].item, h.data[i].item) {
			return false
		}
		if r := 2*i + 2; r < len(h.data) && h.less(h.data[r].item, h.data[i].item) {
			return false
		}
		s := h.slots[h.data[i].slot]
		if !s.live || s.pos != i {
			return false
		}
	}

	return true
}
