package nestfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupported   = errors.New("unsupported type")
	ErrMaxDepth      = errors.New("max depth exceeded")
	ErrInvalidConfig = errors.New("invalid config")
)

// Write renders v and writes it to w. The type of v is checked before
// anything is rendered, and the rendering is written to w only once it is
// complete, so an error leaves w untouched.
func Write(w io.Writer, v any, opts ...Option) error {
	data, err := Marshal(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal renders v and returns the bytes.
func Marshal(v any, opts ...Option) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if rv.IsValid() {
		if err := CheckType(rv.Type()); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	r := newRenderer(&buf, opts)
	if err := r.value(rv, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sprint renders v as a string. Errors are reported inline the way fmt
// reports bad verbs, e.g. "%!v(unsupported type: chan int)".
func Sprint(v any, opts ...Option) string {
	return fmt.Sprint(Of(v, opts...))
}

// Value wraps a value so that any fmt verb renders it in nested notation:
//
//	fmt.Println(nestfmt.Of(map[string][]int{"a": {1, 2}})) // [ ( a [ 1 2 ] ) ]
type Value struct {
	v    any
	opts []Option
}

// Of returns v wrapped for use with fmt.
func Of(v any, opts ...Option) Value {
	return Value{v: v, opts: opts}
}

// Format implements fmt.Formatter.
func (v Value) Format(f fmt.State, verb rune) {
	data, err := Marshal(v.v, v.opts...)
	if err != nil {
		fmt.Fprintf(f, "%%!%c(%v)", verb, err)
		return
	}
	_, _ = f.Write(data)
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return fmt.Sprint(v)
}

type renderer struct {
	w   io.Writer
	cfg config
}

func newRenderer(w io.Writer, opts []Option) *renderer {
	return &renderer{w: w, cfg: newConfig(opts)}
}

// value renders v, which sits inside depth enclosing aggregates.
func (r *renderer) value(v reflect.Value, depth int) error {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return r.leaf("<nil>")
	}
	sh := shapeOf(v.Type())
	if sh.capability != Scalar && v.Kind() == reflect.Pointer && v.IsNil() {
		return r.leaf("<nil>")
	}
	switch sh.capability {
	case Scalar:
		return r.scalar(v, sh.leaf)
	case Tuple:
		level, err := r.enter(depth)
		if err != nil {
			return err
		}
		return r.tuple(v, level)
	case Sequence:
		level, err := r.enter(depth)
		if err != nil {
			return err
		}
		return r.sequence(v, level)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, v.Type())
	}
}

// element renders one position or element followed by its separator.
func (r *renderer) element(v reflect.Value, depth int) error {
	if err := r.value(v, depth); err != nil {
		return err
	}
	_, err := io.WriteString(r.w, " ")
	return err
}

// enter returns the nesting level of an aggregate opened at depth.
func (r *renderer) enter(depth int) (int, error) {
	if depth+1 > r.cfg.maxDepth {
		return 0, fmt.Errorf("%w: %d", ErrMaxDepth, r.cfg.maxDepth)
	}
	return depth + 1, nil
}

func (r *renderer) scalar(v reflect.Value, l leaf) error {
	switch l {
	case leafString:
		return r.leaf(v.String())
	case leafBytes:
		return r.leaf(string(v.Bytes()))
	case leafRunes:
		return r.leaf(string(v.Convert(reflect.TypeFor[[]rune]()).Interface().([]rune)))
	default:
		return r.leaf(fmt.Sprint(v.Interface()))
	}
}

func (r *renderer) leaf(s string) error {
	_, err := io.WriteString(r.w, truncateLeaf(s, r.cfg.leafWidth))
	return err
}
