package nestfmt

import (
	"fmt"
	"io"
	"reflect"
)

// Tupler is implemented by fixed-arity, positionally addressable aggregates.
// Arity must be the same for every value of the type; At is called for each
// position in [0, Arity()).
type Tupler interface {
	Arity() int
	At(i int) any
}

// typedTuple lets the package's own tuple types report their position types
// so that [Check] can verify them without a value. ok is false when the type
// cannot form a tuple at all.
type typedTuple interface {
	positionTypes() (types []reflect.Type, ok bool)
}

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns the pair (a, b).
func PairOf[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

// Arity returns 2.
func (Pair[A, B]) Arity() int { return 2 }

// At returns First for 0 and Second for 1.
func (p Pair[A, B]) At(i int) any {
	switch i {
	case 0:
		return p.First
	case 1:
		return p.Second
	}
	panic(outOfRange(i, 2))
}

func (Pair[A, B]) positionTypes() ([]reflect.Type, bool) {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}, true
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf returns the triple (a, b, c).
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Arity returns 3.
func (Triple[A, B, C]) Arity() int { return 3 }

// At returns the fields in declaration order.
func (t Triple[A, B, C]) At(i int) any {
	switch i {
	case 0:
		return t.First
	case 1:
		return t.Second
	case 2:
		return t.Third
	}
	panic(outOfRange(i, 3))
}

func (Triple[A, B, C]) positionTypes() ([]reflect.Type, bool) {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}, true
}

// Quad is a 4-tuple.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// QuadOf returns the quad (a, b, c, d).
func QuadOf[A, B, C, D any](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
}

// Arity returns 4.
func (Quad[A, B, C, D]) Arity() int { return 4 }

// At returns the fields in declaration order.
func (q Quad[A, B, C, D]) At(i int) any {
	switch i {
	case 0:
		return q.First
	case 1:
		return q.Second
	case 2:
		return q.Third
	case 3:
		return q.Fourth
	}
	panic(outOfRange(i, 4))
}

func (Quad[A, B, C, D]) positionTypes() ([]reflect.Type, bool) {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](), reflect.TypeFor[D]()}, true
}

// Fixed renders an array as a tuple instead of a sequence. A must be an
// array type; the arity is its length. A Fixed over any other type is
// Unsupported.
//
//	nestfmt.Sprint(nestfmt.AsTuple([3]int{1, 2, 3})) // "( 1 2 3 )"
type Fixed[A any] struct {
	Array A
}

// AsTuple wraps the array a so that it renders as a tuple.
func AsTuple[A any](a A) Fixed[A] { return Fixed[A]{Array: a} }

// Arity returns the array length, or 0 if A is not an array type.
func (Fixed[A]) Arity() int {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array {
		return 0
	}
	return t.Len()
}

// At returns element i of the array.
func (f Fixed[A]) At(i int) any {
	if n := f.Arity(); i < 0 || i >= n {
		panic(outOfRange(i, n))
	}
	return reflect.ValueOf(&f.Array).Elem().Index(i).Interface()
}

func (Fixed[A]) positionTypes() ([]reflect.Type, bool) {
	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Array {
		return nil, false
	}
	return []reflect.Type{t.Elem()}, true
}

// Char is a rune that renders as its character rather than its code point.
type Char rune

func (c Char) String() string { return string(rune(c)) }

func outOfRange(i, n int) string {
	return fmt.Sprintf("nestfmt: tuple position %d out of range [0, %d)", i, n)
}

func (r *renderer) tuple(v reflect.Value, depth int) error {
	if _, err := io.WriteString(r.w, "( "); err != nil {
		return err
	}
	if shapeOf(v.Type()).tupler {
		tp := v.Interface().(Tupler)
		for i := range tp.Arity() {
			if err := r.element(reflect.ValueOf(tp.At(i)), depth); err != nil {
				return err
			}
		}
	} else {
		t := v.Type()
		for i := range t.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := r.element(v.Field(i), depth); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(r.w, ")")
	return err
}
