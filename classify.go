package nestfmt

import (
	"fmt"
	"reflect"
	"sync"
)

// Capability is the rendering class of a type. It depends on the static type
// only, never on the contents of a value.
type Capability int

const (
	// Unsupported types cannot be rendered. There is no fallback.
	Unsupported Capability = iota
	// Scalar types are rendered by the sink's native formatting (fmt's %v).
	Scalar
	// Tuple types have a fixed arity and positional access.
	Tuple
	// Sequence types expose ordered traversal of an unknown number of elements.
	Sequence
	// Dynamic is reported for interface types whose capability is that of the
	// value they hold.
	Dynamic
)

var capabilityNames = map[Capability]string{
	Unsupported: "unsupported",
	Scalar:      "scalar",
	Tuple:       "tuple",
	Sequence:    "sequence",
	Dynamic:     "dynamic",
}

// String returns the capability name.
func (c Capability) String() string {
	if s, ok := capabilityNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Capability(%d)", int(c))
}

// Classify returns the capability of type T.
func Classify[T any]() Capability {
	return ClassifyType(reflect.TypeFor[T]())
}

// ClassifyType returns the capability of t. A nil type (the type of a nil
// interface value) is Scalar and renders as "<nil>".
func ClassifyType(t reflect.Type) Capability {
	return shapeOf(t).capability
}

// IsTuple reports whether T renders as a parenthesized tuple.
func IsTuple[T any]() bool {
	return Classify[T]() == Tuple
}

// IsSupported reports whether every type reachable from T can be rendered.
// Types held in interfaces are not known until render time and are not
// checked.
func IsSupported[T any]() bool {
	return Check[T]() == nil
}

// Check verifies that every type statically reachable from T (fields,
// elements, map keys, tuple positions) can be rendered.
func Check[T any]() error {
	return CheckType(reflect.TypeFor[T]())
}

// MustSupport panics if T cannot be rendered. Assign it to a package-level
// blank variable to reject a type when the program starts:
//
//	var _ = nestfmt.MustSupport[Report]()
func MustSupport[T any]() struct{} {
	if err := Check[T](); err != nil {
		panic(err)
	}
	return struct{}{}
}

// CheckType is the reflect.Type form of [Check].
func CheckType(t reflect.Type) error {
	return checkType(t, make(map[reflect.Type]struct{}))
}

func checkType(t reflect.Type, seen map[reflect.Type]struct{}) error {
	if t == nil {
		return nil
	}
	if _, ok := seen[t]; ok {
		return nil
	}
	seen[t] = struct{}{}
	sh := shapeOf(t)
	if sh.capability == Unsupported {
		return fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	for _, et := range sh.elems {
		if err := checkType(et, seen); err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
	}
	return nil
}

// traversal selects how a Sequence is walked.
type traversal int

const (
	viaIndex   traversal = iota // slice or array
	viaMap                      // map, sorted by key
	viaFunc                     // iter.Seq or iter.Seq2 shaped func value
	viaAll                      // All() method returning an iterator
	viaBacking                  // Backing() method returning a slice
)

// leaf selects how a Scalar is written.
type leaf int

const (
	leafFormat leaf = iota
	leafString
	leafBytes
	leafRunes
)

type shape struct {
	capability Capability
	traversal  traversal
	leaf       leaf
	pairs      bool // traversal yields key/value pairs
	tupler     bool // positions come from the Tupler interface
	elems      []reflect.Type
}

var shapes sync.Map // reflect.Type -> shape

func shapeOf(t reflect.Type) shape {
	if t == nil {
		return shape{capability: Scalar}
	}
	if sh, ok := shapes.Load(t); ok {
		return sh.(shape)
	}
	sh, _ := shapes.LoadOrStore(t, classify(t))
	return sh.(shape)
}

var (
	tuplerType    = reflect.TypeFor[Tupler]()
	typedType     = reflect.TypeFor[typedTuple]()
	formatterType = reflect.TypeFor[fmt.Formatter]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
	errorType     = reflect.TypeFor[error]()
	byteType      = reflect.TypeFor[byte]()
	runeType      = reflect.TypeFor[rune]()
	boolType      = reflect.TypeFor[bool]()
)

// classify applies the rules in order; the first match wins. Within the
// explicit-capability and the structural tiers the tuple rule is tested
// before the sequence rule.
func classify(t reflect.Type) shape {
	switch {
	case t.Implements(tuplerType):
		sh := shape{capability: Tuple, tupler: true}
		if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Implements(typedType) {
			elems, ok := reflect.Zero(t).Interface().(typedTuple).positionTypes()
			if !ok {
				return shape{capability: Unsupported}
			}
			sh.elems = elems
		}
		return sh
	case t.Implements(formatterType), t.Implements(stringerType), t.Implements(errorType):
		return shape{capability: Scalar}
	}
	if l, ok := textLeaf(t); ok {
		return shape{capability: Scalar, leaf: l}
	}
	if isScalarKind(t.Kind()) {
		return shape{capability: Scalar}
	}

	if out, ok := methodResult(t, "Backing"); ok && out.Kind() == reflect.Slice {
		return shape{capability: Sequence, traversal: viaBacking, elems: []reflect.Type{out.Elem()}}
	}
	if out, ok := methodResult(t, "All"); ok {
		if params, ok := yieldParams(out); ok {
			return shape{capability: Sequence, traversal: viaAll, pairs: len(params) == 2, elems: params}
		}
	}

	switch t.Kind() {
	case reflect.Struct:
		var elems []reflect.Type
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				elems = append(elems, f.Type)
			}
		}
		return shape{capability: Tuple, elems: elems}
	case reflect.Slice, reflect.Array:
		return shape{capability: Sequence, traversal: viaIndex, elems: []reflect.Type{t.Elem()}}
	case reflect.Map:
		return shape{capability: Sequence, traversal: viaMap, pairs: true, elems: []reflect.Type{t.Key(), t.Elem()}}
	case reflect.Func:
		if params, ok := yieldParams(t); ok {
			return shape{capability: Sequence, traversal: viaFunc, pairs: len(params) == 2, elems: params}
		}
	case reflect.Interface:
		return shape{capability: Dynamic}
	}
	return shape{capability: Unsupported}
}

// textLeaf reports whether t is text-like. Text never takes the generic
// sequence path, so []byte renders as "hi" and not as "[ 104 105 ]".
func textLeaf(t reflect.Type) (leaf, bool) {
	switch t.Kind() {
	case reflect.String:
		return leafString, true
	case reflect.Slice:
		switch t.Elem() {
		case byteType:
			return leafBytes, true
		case runeType:
			return leafRunes, true
		}
	}
	return 0, false
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}

// methodResult returns the single result type of the niladic method name on t.
func methodResult(t reflect.Type, name string) (reflect.Type, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, false
	}
	in := 1 // receiver
	if t.Kind() == reflect.Interface {
		in = 0
	}
	if m.Type.NumIn() != in || m.Type.NumOut() != 1 {
		return nil, false
	}
	return m.Type.Out(0), true
}

// yieldParams returns the yield parameter types when t has the shape of
// iter.Seq or iter.Seq2.
func yieldParams(t reflect.Type) ([]reflect.Type, bool) {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	y := t.In(0)
	if y.Kind() != reflect.Func || y.NumOut() != 1 || y.Out(0) != boolType {
		return nil, false
	}
	switch y.NumIn() {
	case 1:
		return []reflect.Type{y.In(0)}, true
	case 2:
		return []reflect.Type{y.In(0), y.In(1)}, true
	}
	return nil, false
}
