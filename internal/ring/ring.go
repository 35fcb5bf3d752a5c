// Package ring provides a fixed-capacity circular queue.
// Storage is allocated once in New; no operation allocates afterwards.
package ring

import "iter"

// Buffer is a FIFO ring of at most Cap() values.
// Values are pushed to the back and popped from the front.
type Buffer[T any] struct {
	data  []T
	start int // index of the oldest value
	end   int // index of the next write
	// empty disambiguates start == end, which is both "empty" and "full".
	empty bool
}

// New creates an empty buffer holding at most capacity values.
// Panics if capacity is less than 1.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{
		data:  make([]T, capacity),
		empty: true,
	}
}

func (b *Buffer[T]) wrap(i int) int {
	return i % len(b.data)
}

// Push appends v at the back. Returns false and leaves the buffer
// unchanged when it is full.
func (b *Buffer[T]) Push(v T) bool {
	if b.IsFull() {
		return false
	}
	b.data[b.end] = v
	b.end = b.wrap(b.end + 1)
	b.empty = false
	return true
}

// Pop removes and returns the oldest value.
func (b *Buffer[T]) Pop() (T, bool) {
	if b.empty {
		var zero T
		return zero, false
	}
	v := b.data[b.start]
	b.start = b.wrap(b.start + 1)
	if b.start == b.end {
		b.empty = true
	}
	return v, true
}

// Len returns the number of stored values.
func (b *Buffer[T]) Len() int {
	switch {
	case b.empty:
		return 0
	case b.start < b.end:
		return b.end - b.start
	default:
		// start == end on a non-empty buffer means full
		return len(b.data) - (b.start - b.end)
	}
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// IsFull reports whether Push would fail.
func (b *Buffer[T]) IsFull() bool {
	return !b.empty && b.start == b.end
}

// IsEmpty reports whether the buffer holds no values.
func (b *Buffer[T]) IsEmpty() bool {
	return b.empty
}

// Clear drops all values. Slots keep their old contents until overwritten.
func (b *Buffer[T]) Clear() {
	b.start = 0
	b.end = 0
	b.empty = true
}

// Get returns the value at logical index i, where 0 is the oldest.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.Len() {
		var zero T
		return zero, false
	}
	return b.data[b.wrap(b.start+i)], true
}

// PeekFront returns the oldest value without removing it.
func (b *Buffer[T]) PeekFront() (T, bool) {
	return b.Get(0)
}

// PeekBack returns the newest value without removing it.
func (b *Buffer[T]) PeekBack() (T, bool) {
	return b.Get(b.Len() - 1)
}

// All yields the stored values from oldest to newest.
// The sequence is lazy and may be ranged over any number of times.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; ; i++ {
			v, ok := b.Get(i)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Contains reports whether any stored value satisfies match.
func (b *Buffer[T]) Contains(match func(T) bool) bool {
	for v := range b.All() {
		if match(v) {
			return true
		}
	}
	return false
}
