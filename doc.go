// Package nestfmt renders arbitrarily nested Go values as text.
//
// Aggregates with a fixed arity and positional access render as
// parenthesized tuples, ordered collections render as bracketed sequences,
// and everything else is written with fmt's %v verb. The same decision is
// applied recursively to every element:
//
//	nestfmt.Sprint(nestfmt.TripleOf(5, 10, 15))           // ( 5 10 15 )
//	nestfmt.Sprint([]float64{1, 3})                       // [ 1 3 ]
//	nestfmt.Sprint(map[int][]string{1: {"a"}, 2: nil})   // [ ( 1 [ a ] ) ( 2 [ ] ) ]
//
// The central entry points are [Write], [Marshal], [Sprint] and [Of]. [Of]
// wraps a value for use with any fmt function:
//
//	fmt.Println(nestfmt.Of(values))
//
// # Formats
//
// A sequence is "[ " followed by each element and a space, then "]". A tuple
// is "( " followed by each position and a space, then ")". Empty aggregates
// render as "[ ]" and "( )".
//
// # Capabilities
//
// Every type has exactly one [Capability], computed from the type alone and
// cached. The rules are tried in order and the first match wins:
//
//  1. A nil interface value is [Scalar] and renders as "<nil>".
//  2. A type implementing [Tupler] is a [Tuple].
//  3. A type implementing [fmt.Formatter], [fmt.Stringer] or error is
//     [Scalar].
//  4. Text is [Scalar]: string kinds, []byte and []rune are never rendered
//     as lists of characters.
//  5. Booleans and numbers are [Scalar].
//  6. A type with a Backing method returning a slice (see [Exposer]), or an
//     All method returning an iter.Seq or iter.Seq2, is a [Sequence].
//  7. A struct is a [Tuple] of its exported fields.
//  8. Slices, arrays, maps and iter.Seq or iter.Seq2 functions are
//     [Sequence]. Maps render as ( key value ) pairs in ascending key order.
//  9. An interface type is [Dynamic]: the value it holds is classified.
//  10. Anything else, including channels, other functions and bare
//     pointers, is [Unsupported].
//
// Use [IsTuple] to query the classification, and [Check] or [MustSupport] to
// reject a type before any value of it is rendered:
//
//	var _ = nestfmt.MustSupport[Report]()
//
// # Adapters
//
// [Stack], [Queue] and [PriorityQueue] restrict their public surface to
// push, pop and peek. They implement [Exposer], which grants traversal of
// the backing store in stored order; that is what they render as. [Values]
// and [Pointers] iterate any Exposer.
//
// # Raw memory
//
// A pointer carries no length, so it is never rendered. [NewSpan] pairs a
// pointer with an explicit count; the resulting [Span] is a sequence.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupported]: a type cannot be rendered
//   - [ErrMaxDepth]: nesting exceeds [WithMaxDepth]
//   - [ErrInvalidConfig]: [LoadConfig] rejected its input
package nestfmt
