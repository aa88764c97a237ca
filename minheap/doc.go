// Package minheap provides a generic, array-backed binary min-heap ordered
// by a caller-supplied key extractor.
//
// What:
//
//   - Heap[T] stores opaque element references in a dense backing slice;
//     the heap property is evaluated through a KeyFunc rather than a
//     runtime type tag, so the same structure serves node f-scores or raw
//     numeric keys alike.
//   - Push appends and sifts up; PopMin swaps the last element into the
//     root and sifts down; Fix repairs one element whose key changed in
//     place (decrease-key for the A* open set).
//   - Contains is a deliberate O(n) identity scan: membership stays
//     correct even after a stored element's key has been mutated, which a
//     key-ordered lookup could not guarantee.
//
// Why:
//
//   - The open set of the astar engine, keyed by node f-score.
//   - Any small frontier where identity membership matters more than
//     sub-linear lookup.
//
// Complexity:
//
//   - Push/PopMin: O(log n).
//   - Contains:    O(n) by design (see above).
//   - Fix:         O(n) locate + O(log n) sift.
//
// Guarantees and non-guarantees:
//
//   - After every Push, PopMin and Fix: key(i) ≤ key(child) for every
//     internal index i.
//   - Ties between equal keys are broken arbitrarily by structural
//     position; no FIFO or insertion order is promised.
//
// Errors:
//
//   - ErrEmptyHeap: PopMin on an empty heap.
//   - New panics on a nil KeyFunc (configuration bug, not a runtime event).
package minheap
