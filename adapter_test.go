package nestfmt_test

import (
	"slices"
	"testing"

	"github.com/bjaus/nestfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Parallel()
	st := nestfmt.NewStack[float64]()
	st.Push(1.0)
	st.Push(2.0)
	st.Push(3.0)
	assert.Equal(t, "[ 1 2 3 ]", nestfmt.Sprint(st))
	assert.Equal(t, 3, st.Len())

	top, ok := st.Top()
	require.True(t, ok)
	assert.Equal(t, 3.0, top)

	for _, want := range []float64{3, 2, 1} {
		got, ok := st.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, st.Empty())
	_, ok = st.Pop()
	assert.False(t, ok)
	_, ok = st.Top()
	assert.False(t, ok)
	assert.Equal(t, "[ ]", nestfmt.Sprint(st))
}

func TestStackZeroValue(t *testing.T) {
	t.Parallel()
	var st nestfmt.Stack[string]
	st.Push("a")
	st.Push("b")
	assert.Equal(t, "[ a b ]", nestfmt.Sprint(st))
	assert.Equal(t, "[ a b ]", nestfmt.Sprint(&st))
}

func TestNilAdapter(t *testing.T) {
	t.Parallel()
	var st *nestfmt.Stack[int]
	assert.Equal(t, "<nil>", nestfmt.Sprint(st))
	assert.Equal(t, "[ <nil> ]", nestfmt.Sprint([]*nestfmt.Queue[int]{nil}))
}

func TestStackPopKeepsNaturalOrder(t *testing.T) {
	t.Parallel()
	st := nestfmt.NewStack[int]()
	for i := range 5 {
		st.Push(i)
	}
	st.Pop()
	st.Pop()
	assert.Equal(t, "[ 0 1 2 ]", nestfmt.Sprint(st))
}

func TestQueue(t *testing.T) {
	t.Parallel()
	q := nestfmt.NewQueue[int]()
	q.Push(25)
	q.Push(50)
	q.Push(75)
	assert.Equal(t, "[ 25 50 75 ]", nestfmt.Sprint(q))

	front, ok := q.Front()
	require.True(t, ok)
	assert.Equal(t, 25, front)
	back, ok := q.Back()
	require.True(t, ok)
	assert.Equal(t, 75, back)

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 25, got)
	assert.Equal(t, "[ 50 75 ]", nestfmt.Sprint(q))
	assert.Equal(t, 2, q.Len())
}

func TestQueueEmpty(t *testing.T) {
	t.Parallel()
	var q nestfmt.Queue[int]
	assert.True(t, q.Empty())
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Front()
	assert.False(t, ok)
	_, ok = q.Back()
	assert.False(t, ok)
	assert.Equal(t, "[ ]", nestfmt.Sprint(q))
}

func TestQueueDequeueThenPush(t *testing.T) {
	t.Parallel()
	q := nestfmt.NewQueue[int]()
	for i := 1; i <= 4; i++ {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	q.Push(5)
	assert.Equal(t, []int{3, 4, 5}, slices.Collect(nestfmt.Values[int](q)))
}

func TestPriorityQueue(t *testing.T) {
	t.Parallel()
	pq := nestfmt.NewPriorityQueue[int]()
	pq.Push(25)
	pq.Push(26)
	pq.Push(27)
	// Heap-array order, not sorted order.
	assert.Equal(t, "[ 27 25 26 ]", nestfmt.Sprint(pq))

	top, ok := pq.Top()
	require.True(t, ok)
	assert.Equal(t, 27, top)

	got, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, 27, got)
	assert.Equal(t, "[ 26 25 ]", nestfmt.Sprint(pq))

	got, _ = pq.Pop()
	assert.Equal(t, 26, got)
	got, _ = pq.Pop()
	assert.Equal(t, 25, got)
	assert.True(t, pq.Empty())
	_, ok = pq.Pop()
	assert.False(t, ok)
	_, ok = pq.Top()
	assert.False(t, ok)
}

func TestPriorityQueueFunc(t *testing.T) {
	t.Parallel()
	pq := nestfmt.NewPriorityQueueFunc(func(a, b int) bool { return a > b })
	pq.Push(3)
	pq.Push(1)
	pq.Push(2)
	assert.Equal(t, "[ 1 3 2 ]", nestfmt.Sprint(pq))
	top, _ := pq.Top()
	assert.Equal(t, 1, top)
	assert.Equal(t, 3, pq.Len())
}

func TestPriorityQueuePopsInOrder(t *testing.T) {
	t.Parallel()
	pq := nestfmt.NewPriorityQueue[string]()
	for _, s := range []string{"pear", "apple", "fig", "kiwi"} {
		pq.Push(s)
	}
	var got []string
	for !pq.Empty() {
		s, _ := pq.Pop()
		got = append(got, s)
	}
	assert.Equal(t, []string{"pear", "kiwi", "fig", "apple"}, got)
}

type job struct {
	Name  string
	Queue nestfmt.PriorityQueue[int]
}

func TestPriorityQueueZeroValue(t *testing.T) {
	t.Parallel()
	require.True(t, nestfmt.IsSupported[job]())
	assert.Equal(t, "( j [ ] )", nestfmt.Sprint(job{Name: "j"}))

	var pq nestfmt.PriorityQueue[int]
	assert.Equal(t, "[ ]", nestfmt.Sprint(pq))
	assert.True(t, pq.Empty())
	assert.Equal(t, 0, pq.Len())
	assert.Nil(t, pq.Backing())
	_, ok := pq.Top()
	assert.False(t, ok)
	_, ok = pq.Pop()
	assert.False(t, ok)

	for _, v := range []int{25, 26, 27} {
		pq.Push(v)
	}
	assert.Equal(t, "[ 27 25 26 ]", nestfmt.Sprint(pq))
	top, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, 27, top)
}

func TestPriorityQueueZeroValueStrings(t *testing.T) {
	t.Parallel()
	var pq nestfmt.PriorityQueue[string]
	pq.Push("b")
	pq.Push("c")
	pq.Push("a")
	top, ok := pq.Top()
	require.True(t, ok)
	assert.Equal(t, "c", top)
}

func TestPriorityQueueZeroValueUnordered(t *testing.T) {
	t.Parallel()
	var pq nestfmt.PriorityQueue[[]int]
	assert.PanicsWithValue(t, "nestfmt: zero PriorityQueue[[]int] has no order, use NewPriorityQueueFunc", func() {
		pq.Push([]int{1})
	})
}

func TestPointersMutateInPlace(t *testing.T) {
	t.Parallel()
	st := nestfmt.NewStack[int]()
	st.Push(1)
	st.Push(2)
	st.Push(3)
	for p := range nestfmt.Pointers[int](st) {
		*p *= 2
	}
	assert.Equal(t, "[ 2 4 6 ]", nestfmt.Sprint(st))
	top, _ := st.Top()
	assert.Equal(t, 6, top)
}

func TestValuesStopsEarly(t *testing.T) {
	t.Parallel()
	q := nestfmt.NewQueue[int]()
	for i := range 10 {
		q.Push(i)
	}
	var got []int
	for v := range nestfmt.Values[int](q) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestAdaptersNest(t *testing.T) {
	t.Parallel()
	q := nestfmt.NewQueue[nestfmt.Pair[string, *nestfmt.Stack[int]]]()
	st := nestfmt.NewStack[int]()
	st.Push(1)
	q.Push(nestfmt.PairOf("s", st))
	q.Push(nestfmt.PairOf("empty", nestfmt.NewStack[int]()))
	assert.Equal(t, "[ ( s [ 1 ] ) ( empty [ ] ) ]", nestfmt.Sprint(q))
}
