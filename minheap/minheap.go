// Package minheap implements the array-backed binary min-heap used as the
// open set of the astar engine.
package minheap

import "errors"

// ErrEmptyHeap indicates PopMin was called on a heap with no elements.
var ErrEmptyHeap = errors.New("minheap: heap is empty")

// KeyFunc extracts the scalar ordering key of an element. The heap property
// is evaluated through this function on every Push, PopMin and Fix.
type KeyFunc[T comparable] func(T) int64

// Heap is a binary min-heap over a dense backing slice, ordered by a
// caller-supplied key extractor. Parent of index i is (i-1)/2; children are
// 2i+1 and 2i+2. Ties between equal keys are broken arbitrarily by
// structural position; callers must not rely on any particular order of
// equal-keyed elements.
//
// Membership (Contains) is a linear scan by element identity. If an
// element's key changes while it is stored, Contains still finds it; call
// Fix to restore the heap property for that element.
type Heap[T comparable] struct {
	items []T
	key   KeyFunc[T]
}

// New returns an empty heap ordered by the given key extractor.
// A nil key function is a configuration bug and panics immediately.
func New[T comparable](key KeyFunc[T]) *Heap[T] {
	if key == nil {
		panic("minheap: key function must not be nil")
	}

	return &Heap[T]{key: key}
}

// Len returns the number of elements currently stored. Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Contains reports whether v is currently stored, comparing by element
// identity, not by key. Complexity: O(n) by design — membership remains
// correct even after an element's key was changed in place.
func (h *Heap[T]) Contains(v T) bool {
	for _, item := range h.items {
		if item == v {
			return true
		}
	}

	return false
}

// Push appends v to the backing slice and sifts it up until the heap
// property holds. Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// PopMin removes and returns the minimum-keyed element.
//
// Returns ErrEmptyHeap if the heap is empty. With exactly one element the
// element is returned directly; otherwise the last element replaces the
// root and is sifted down. Complexity: O(log n).
func (h *Heap[T]) PopMin() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.items[0]
	if n == 1 {
		h.items[0] = zero
		h.items = h.items[:0]

		return root, nil
	}
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero // release the vacated slot
	h.items = h.items[:n-1]
	h.siftDown(0)

	return root, nil
}

// Fix restores the heap property for a stored element whose key changed in
// place, and reports whether the element was found. The element is located
// by identity with a linear scan, then sifted in whichever direction the
// new key requires. Complexity: O(n) locate + O(log n) sift.
func (h *Heap[T]) Fix(v T) bool {
	for i, item := range h.items {
		if item == v {
			if h.siftUp(i) == i {
				h.siftDown(i)
			}

			return true
		}
	}

	return false
}

// Clear removes all elements while keeping the backing capacity.
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
}

// siftUp moves the element at index i toward the root while its key is
// smaller than its parent's key, returning the index it settles at.
func (h *Heap[T]) siftUp(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if h.key(h.items[i]) >= h.key(h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}

	return i
}

// siftDown moves the element at index i toward the leaves, swapping with
// the smaller child while that child's key is less than its own.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.key(h.items[left]) < h.key(h.items[smallest]) {
			smallest = left
		}
		if right < n && h.key(h.items[right]) < h.key(h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
