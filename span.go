package nestfmt

import (
	"iter"
	"unsafe"
)

// Span is a non-owning view of n contiguous elements starting at a raw
// pointer. It exists to give pointer-addressed memory a length so that it
// can be traversed and rendered; a bare pointer is never rendered.
//
// A Span performs no bounds checking and manages no lifetime. The caller
// guarantees that ptr addresses at least n elements of T, and that the
// memory stays valid while the Span is in use. Writing through Pointers or
// Slice writes the underlying memory directly.
type Span[T any] struct {
	ptr *T
	n   int
}

// NewSpan returns the span of n elements starting at p. A nil p with n == 0
// is the empty span.
func NewSpan[T any](p *T, n int) Span[T] {
	return Span[T]{ptr: p, n: n}
}

// Begin returns the pointer the span starts at.
func (s Span[T]) Begin() *T { return s.ptr }

// Len returns the number of elements in the span.
func (s Span[T]) Len() int { return s.n }

// Slice returns the span as a slice sharing its memory.
func (s Span[T]) Slice() []T {
	if s.ptr == nil || s.n == 0 {
		return nil
	}
	return unsafe.Slice(s.ptr, s.n)
}

// All yields the elements of the span in address order.
func (s Span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each element of the span, for in-place
// updates.
func (s Span[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		store := s.Slice()
		for i := range store {
			if !yield(&store[i]) {
				return
			}
		}
	}
}
