package nestfmt

import (
	"cmp"
	"container/heap"
	"fmt"
	"iter"
	"reflect"
)

// Exposer is implemented by adapter containers that grant traversal of their
// backing store. Backing returns the store in its natural stored order,
// aliasing the container's memory: writing to an element changes the
// container. Callers must not grow or shrink the store through it; the
// container's bookkeeping is not protected against that.
//
// Any type with a Backing method returning a slice renders as a sequence of
// that slice.
type Exposer[T any] interface {
	Backing() []T
}

// Values yields the backing store of e in stored order.
func Values[T any](e Exposer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range e.Backing() {
			if !yield(v) {
				return
			}
		}
	}
}

// Pointers yields a pointer to each element of the backing store of e, for
// in-place updates.
func Pointers[T any](e Exposer[T]) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		store := e.Backing()
		for i := range store {
			if !yield(&store[i]) {
				return
			}
		}
	}
}

// Stack is a last-in-first-out container. Its backing order is bottom to
// top, the reverse of the order Pop returns elements in.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack. The zero Stack is also ready to use.
func NewStack[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element. It reports false if the stack is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Top returns the top element without removing it.
func (s Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
func (s Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s Stack[T]) Empty() bool { return len(s.items) == 0 }

// Backing returns the elements from bottom to top.
func (s Stack[T]) Backing() []T { return s.items }

// Queue is a first-in-first-out container. Its backing order is front to
// back.
type Queue[T any] struct {
	items []T
}

// NewQueue returns an empty queue. The zero Queue is also ready to use.
func NewQueue[T any]() *Queue[T] { return &Queue[T]{} }

// Push appends v at the back of the queue.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front element. It reports false if the queue
// is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Front returns the element Pop would return next.
func (q Queue[T]) Front() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

// Back returns the most recently pushed element.
func (q Queue[T]) Back() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// Len returns the number of queued elements.
func (q Queue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue holds no elements.
func (q Queue[T]) Empty() bool { return len(q.items) == 0 }

// Backing returns the elements from front to back.
func (q Queue[T]) Backing() []T { return q.items }

// PriorityQueue is a binary max-heap: Top and Pop return the greatest
// element by its less function. Its backing order is the heap array, not
// sorted order. Pushing 25, 26 and 27 leaves the store as [27 25 26].
//
// The zero PriorityQueue is empty and orders integer, float and string
// kinds naturally. Other element types need [NewPriorityQueueFunc]; pushing
// onto a zero queue of such a type panics.
type PriorityQueue[T any] struct {
	store *heapStore[T]
}

// NewPriorityQueue returns an empty queue ordered by cmp.Less.
func NewPriorityQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueFunc(cmp.Less[T])
}

// NewPriorityQueueFunc returns an empty queue ordered by less. Top returns
// an element that no other element is greater than.
func NewPriorityQueueFunc[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{store: &heapStore[T]{less: less}}
}

// Push inserts v.
func (pq *PriorityQueue[T]) Push(v T) {
	if pq.store == nil {
		pq.store = &heapStore[T]{less: naturalLess[T]()}
	}
	heap.Push(pq.store, v)
}

// Pop removes and returns the greatest element. It reports false if the
// queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.Empty() {
		var zero T
		return zero, false
	}
	return heap.Pop(pq.store).(T), true
}

// Top returns the greatest element without removing it.
func (pq PriorityQueue[T]) Top() (T, bool) {
	if pq.Empty() {
		var zero T
		return zero, false
	}
	return pq.store.items[0], true
}

// Len returns the number of queued elements.
func (pq PriorityQueue[T]) Len() int { return len(pq.Backing()) }

// Empty reports whether the queue holds no elements.
func (pq PriorityQueue[T]) Empty() bool { return pq.Len() == 0 }

// Backing returns the heap array.
func (pq PriorityQueue[T]) Backing() []T {
	if pq.store == nil {
		return nil
	}
	return pq.store.items
}

// naturalLess orders the integer, float and string kinds for the zero
// PriorityQueue.
func naturalLess[T any]() func(a, b T) bool {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.String:
	default:
		panic(fmt.Sprintf("nestfmt: zero PriorityQueue[%s] has no order, use NewPriorityQueueFunc", t))
	}
	return func(a, b T) bool {
		return compareKeys(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()) < 0
	}
}

// heapStore adapts a slice to heap.Interface. Less is inverted so that the
// root holds the greatest element.
type heapStore[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *heapStore[T]) Len() int           { return len(h.items) }
func (h *heapStore[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }
func (h *heapStore[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *heapStore[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *heapStore[T]) Pop() any {
	var zero T
	n := len(h.items)
	v := h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return v
}
