package minheap

// Items exposes the backing slice so tests can verify the heap invariant
// after every operation. Test-only; the slice must not be modified.
func (h *Heap[T]) Items() []T { return h.items }

// Key exposes the key extractor for invariant checks in tests.
func (h *Heap[T]) Key(v T) int64 { return h.key(v) }
