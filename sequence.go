package nestfmt

import (
	"cmp"
	"io"
	"reflect"
	"slices"
)

func (r *renderer) sequence(v reflect.Value, depth int) error {
	if _, err := io.WriteString(r.w, "[ "); err != nil {
		return err
	}
	if err := r.each(v, depth); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, "]")
	return err
}

// each renders every element of the Sequence v, in traversal order.
func (r *renderer) each(v reflect.Value, depth int) error {
	sh := shapeOf(v.Type())
	switch sh.traversal {
	case viaBacking:
		return r.indexed(v.MethodByName("Backing").Call(nil)[0], depth)
	case viaAll:
		return r.iterate(v.MethodByName("All").Call(nil)[0], sh.pairs, depth)
	case viaFunc:
		return r.iterate(v, sh.pairs, depth)
	case viaMap:
		for _, e := range sortedEntries(v) {
			if err := r.pair(e.key, e.val, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.indexed(v, depth)
	}
}

func (r *renderer) indexed(v reflect.Value, depth int) error {
	for i := range v.Len() {
		if err := r.element(v.Index(i), depth); err != nil {
			return err
		}
	}
	return nil
}

// iterate walks an iter.Seq or iter.Seq2 shaped func value.
func (r *renderer) iterate(fn reflect.Value, pairs bool, depth int) error {
	var err error
	callSeq(fn, func(args []reflect.Value) bool {
		if pairs {
			err = r.pair(args[0], args[1], depth)
		} else {
			err = r.element(args[0], depth)
		}
		return err == nil
	})
	return err
}

// pair renders a key/value entry as a 2-tuple nested in the sequence.
func (r *renderer) pair(k, v reflect.Value, depth int) error {
	level, err := r.enter(depth)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, "( "); err != nil {
		return err
	}
	if err := r.element(k, level); err != nil {
		return err
	}
	if err := r.element(v, level); err != nil {
		return err
	}
	if _, err := io.WriteString(r.w, ") "); err != nil {
		return err
	}
	return nil
}

type mapEntry struct {
	key, val reflect.Value
}

// sortedEntries returns the entries of map v ordered by key. Each key keeps
// the value it was stored with, which a lookup by key cannot do for NaN.
func sortedEntries(v reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, v.Len())
	for it := v.MapRange(); it.Next(); {
		entries = append(entries, mapEntry{key: it.Key(), val: it.Value()})
	}
	slices.SortFunc(entries, func(a, b mapEntry) int { return compareKeys(a.key, b.key) })
	return entries
}

// callSeq calls the iterator fn with a yield function backed by each. A nil
// iterator yields nothing.
func callSeq(fn reflect.Value, each func(args []reflect.Value) bool) {
	if fn.IsNil() {
		return
	}
	yt := fn.Type().In(0)
	yield := reflect.MakeFunc(yt, func(args []reflect.Value) []reflect.Value {
		return []reflect.Value{reflect.ValueOf(each(args))}
	})
	fn.Call([]reflect.Value{yield})
}

// compareKeys orders map keys so that map rendering is deterministic.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		return compareInterfaces(a, b)
	}
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Complex64, reflect.Complex128:
		ac, bc := a.Complex(), b.Complex()
		if c := cmp.Compare(real(ac), real(bc)); c != 0 {
			return c
		}
		return cmp.Compare(imag(ac), imag(bc))
	case reflect.Bool:
		switch {
		case a.Bool() == b.Bool():
			return 0
		case a.Bool():
			return 1
		default:
			return -1
		}
	case reflect.Array:
		for i := range a.Len() {
			if c := compareKeys(a.Index(i), b.Index(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Struct:
		for i := range a.NumField() {
			if c := compareKeys(a.Field(i), b.Field(i)); c != 0 {
				return c
			}
		}
		return 0
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return cmp.Compare(a.Pointer(), b.Pointer())
	}
	return 0
}

// compareInterfaces orders nil first, then by dynamic type name, then by
// value for keys of the same type.
func compareInterfaces(a, b reflect.Value) int {
	switch {
	case a.IsNil() && b.IsNil():
		return 0
	case a.IsNil():
		return -1
	case b.IsNil():
		return 1
	}
	ae, be := a.Elem(), b.Elem()
	if ae.Type() != be.Type() {
		return cmp.Compare(ae.Type().String(), be.Type().String())
	}
	return compareKeys(ae, be)
}
