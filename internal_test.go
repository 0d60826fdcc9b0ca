package nestfmt

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateLeaf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in    string
		width int
		want  string
	}{
		"no limit": {in: "hello", width: 0, want: "hello"},
		"fits":     {in: "hello", width: 5, want: "hello"},
		"ellipsis": {in: "hello world", width: 8, want: "hello..."},
		"narrow":   {in: "hello", width: 3, want: "hel"},
		// "你" is full-width (2 columns).
		"wide": {in: "你好世界", width: 5, want: "你..."},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncateLeaf(tt.in, tt.width))
		})
	}
}

func TestCompareKeys(t *testing.T) {
	t.Parallel()
	type key struct {
		A int
		b string
	}
	tests := map[string]struct {
		keys []any
		want []any
	}{
		"ints":      {keys: []any{3, -1, 2}, want: []any{-1, 2, 3}},
		"uints":     {keys: []any{uint(9), uint(1)}, want: []any{uint(1), uint(9)}},
		"strings":   {keys: []any{"b", "a", "c"}, want: []any{"a", "b", "c"}},
		"floats":    {keys: []any{2.5, -1.0, 0.5}, want: []any{-1.0, 0.5, 2.5}},
		"bools":     {keys: []any{true, false}, want: []any{false, true}},
		"complex":   {keys: []any{complex(1, 2), complex(1, 1), complex(0, 5)}, want: []any{complex(0, 5), complex(1, 1), complex(1, 2)}},
		"arrays":    {keys: []any{[2]int{1, 2}, [2]int{1, 1}}, want: []any{[2]int{1, 1}, [2]int{1, 2}}},
		"structs":   {keys: []any{key{A: 1, b: "z"}, key{A: 1, b: "a"}, key{A: 0}}, want: []any{key{A: 0}, key{A: 1, b: "a"}, key{A: 1, b: "z"}}},
		"mixed":     {keys: []any{"a", 1, nil}, want: []any{nil, 1, "a"}},
		"same type": {keys: []any{"b", "a"}, want: []any{"a", "b"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			// Wrap in an []any so every element is an interface value, as
			// map[any]T keys are.
			holder := reflect.ValueOf(tt.keys)
			vals := make([]reflect.Value, holder.Len())
			for i := range vals {
				vals[i] = holder.Index(i)
			}
			slices.SortFunc(vals, compareKeys)
			got := make([]any, len(vals))
			for i, v := range vals {
				got[i] = v.Interface()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYieldParams(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		typ  reflect.Type
		want int
		ok   bool
	}{
		"seq":       {typ: reflect.TypeFor[func(func(int) bool)](), want: 1, ok: true},
		"seq2":      {typ: reflect.TypeFor[func(func(string, int) bool)](), want: 2, ok: true},
		"no yield":  {typ: reflect.TypeFor[func()](), ok: false},
		"returns":   {typ: reflect.TypeFor[func(func(int) bool) int](), ok: false},
		"not bool":  {typ: reflect.TypeFor[func(func(int) int)](), ok: false},
		"three":     {typ: reflect.TypeFor[func(func(int, int, int) bool)](), ok: false},
		"not func":  {typ: reflect.TypeFor[int](), ok: false},
		"pull func": {typ: reflect.TypeFor[func() (int, bool)](), ok: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			params, ok := yieldParams(tt.typ)
			assert.Equal(t, tt.ok, ok)
			assert.Len(t, params, tt.want)
		})
	}
}

func TestShapeCached(t *testing.T) {
	t.Parallel()
	typ := reflect.TypeFor[map[string][]Pair[int, bool]]()
	first := shapeOf(typ)
	cached, ok := shapes.Load(typ)
	assert.True(t, ok)
	assert.Equal(t, first, cached.(shape))
	assert.Equal(t, viaMap, first.traversal)
	assert.True(t, first.pairs)
}

func TestClassifyTraversal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, viaBacking, shapeOf(reflect.TypeFor[*Stack[int]]()).traversal)
	assert.Equal(t, viaAll, shapeOf(reflect.TypeFor[Span[int]]()).traversal)
	assert.Equal(t, viaIndex, shapeOf(reflect.TypeFor[[4]int]()).traversal)
	assert.Equal(t, leafBytes, shapeOf(reflect.TypeFor[[]byte]()).leaf)
	assert.Equal(t, leafRunes, shapeOf(reflect.TypeFor[[]rune]()).leaf)
	assert.True(t, shapeOf(reflect.TypeFor[Triple[int, int, int]]()).tupler)
	assert.False(t, shapeOf(reflect.TypeFor[struct{ A int }]()).tupler)
}

func TestCallSeqNil(t *testing.T) {
	t.Parallel()
	called := false
	callSeq(reflect.ValueOf((func(func(int) bool))(nil)), func([]reflect.Value) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestCallSeqStops(t *testing.T) {
	t.Parallel()
	seq := func(yield func(int) bool) {
		for i := range 10 {
			if !yield(i) {
				return
			}
		}
	}
	var got []int
	callSeq(reflect.ValueOf(seq), func(args []reflect.Value) bool {
		got = append(got, int(args[0].Int()))
		return len(got) < 3
	})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestOutOfRangePanics(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, "nestfmt: tuple position 2 out of range [0, 2)", func() {
		PairOf(1, 2).At(2)
	})
}
