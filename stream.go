package nestfmt

import (
	"io"
	"iter"
	"reflect"
)

// WriteIter renders the items of seq as one sequence, writing each item to w
// as it arrives. A nil seq renders as "[ ]". Unlike [Write], output produced
// before an error has already been written.
func WriteIter[T any](w io.Writer, seq iter.Seq[T], opts ...Option) error {
	if err := Check[T](); err != nil {
		return err
	}
	r := newRenderer(w, opts)
	return r.stream(func(yield func(err error) bool) {
		if seq == nil {
			return
		}
		for item := range seq {
			if !yield(r.element(reflect.ValueOf(&item).Elem(), 1)) {
				return
			}
		}
	})
}

// WriteIter2 renders the entries of seq as a sequence of ( key value ) pairs.
func WriteIter2[K, V any](w io.Writer, seq iter.Seq2[K, V], opts ...Option) error {
	if err := Check[Pair[K, V]](); err != nil {
		return err
	}
	r := newRenderer(w, opts)
	return r.stream(func(yield func(err error) bool) {
		if seq == nil {
			return
		}
		for k, v := range seq {
			if !yield(r.pair(reflect.ValueOf(&k).Elem(), reflect.ValueOf(&v).Elem(), 1)) {
				return
			}
		}
	})
}

// WriteChan renders the items received from ch as one sequence. A nil ch
// renders as "[ ]" instead of blocking. It is a thin wrapper around
// [WriteIter].
func WriteChan[T any](w io.Writer, ch <-chan T, opts ...Option) error {
	return WriteIter(w, chanToIter(ch), opts...)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	if ch == nil {
		return nil
	}
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// stream writes the brackets of a top-level sequence around the elements
// rendered by items, stopping at the first element error.
func (r *renderer) stream(items iter.Seq[error]) error {
	if _, err := r.enter(0); err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, "[ "); err != nil {
		return err
	}
	for err := range items {
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.w, "]")
	return err
}
