package itermap

import "iter"

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output sequence.
	Predicate[T any] func(item T) bool
)

// Map transforms each input value using fn and returns an Iterator producing
// the mapped values.
func Map[In, Out any](seq iter.Seq[In], fn MapFunc[In, Out]) *Iterator[Source[In], Out] {
	return Attach(seq, func(src *Source[In]) (Out, bool) {
		in, ok := src.Next()
		if !ok {
			var zero Out
			return zero, false
		}
		return fn(in), true
	})
}

// Filter returns an Iterator that yields only the values for which predicate
// returns true.
func Filter[T any](seq iter.Seq[T], predicate Predicate[T]) *Iterator[Source[T], T] {
	return Attach(seq, func(src *Source[T]) (T, bool) {
		for {
			in, ok := src.Next()
			if !ok || predicate(in) {
				return in, ok
			}
		}
	})
}

// Flatten converts a sequence of slices into an Iterator over their elements,
// emitting the items of each slice in order. Empty slices are skipped.
func Flatten[T any](seq iter.Seq[[]T]) *Iterator[Source[[]T], T] {
	var pending []T
	return Attach(seq, func(src *Source[[]T]) (T, bool) {
		for len(pending) == 0 {
			slice, ok := src.Next()
			if !ok {
				var zero T
				return zero, false
			}
			pending = slice
		}
		item := pending[0]
		pending = pending[1:]
		return item, true
	})
}

// FlatMap transforms each input value using fn and returns an Iterator
// producing the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(seq, fn).All()).
func FlatMap[In, Out any](seq iter.Seq[In], fn MapFunc[In, []Out]) *Iterator[Source[[]Out], Out] {
	return Flatten(Map(seq, fn).All())
}

// Chunk groups incoming values into slices of the given size and returns an
// Iterator producing those slices.
//
// Every chunk has its own backing slice, so chunks may be retained.
// The final chunk may be smaller than chunkSize.
//
// Chunk panics if chunkSize is not positive.
func Chunk[T any](seq iter.Seq[T], chunkSize int) *Iterator[Source[T], []T] {
	if chunkSize <= 0 {
		panic("itermap.Chunk: chunkSize must be positive")
	}

	return Attach(seq, func(src *Source[T]) ([]T, bool) {
		var accum []T
		for len(accum) < chunkSize {
			in, ok := src.Next()
			if !ok {
				break
			}
			if accum == nil {
				accum = make([]T, 0, chunkSize)
			}
			accum = append(accum, in)
		}
		return accum, len(accum) > 0
	})
}

// GroupBy groups consecutive input values according to a key function and
// returns an Iterator producing slices of those grouped values.
//
// GroupBy does not reorder values; values are grouped only when they appear
// consecutively with the same key. For example, given input values:
//
//	A, A, B, B, A
//
// GroupBy will emit:
//
//	[A, A], [B, B], [A]
func GroupBy[T any, K comparable](seq iter.Seq[T], keyFunc func(T) K) *Iterator[Source[T], []T] {
	return Attach(seq, func(src *Source[T]) ([]T, bool) {
		first, ok := src.Next()
		if !ok {
			return nil, false
		}

		key := keyFunc(first)
		group := []T{first}
		for {
			next, ok := src.Peek()
			if !ok || keyFunc(next) != key {
				return group, true
			}
			src.Next()
			group = append(group, next)
		}
	})
}

// GroupByAggregate groups consecutive input values by key and aggregates
// them using user-supplied initialization and update callbacks, producing
// one aggregated output value per group.
//
// It is equivalent to GroupBy followed by a fold over each group, but does
// not allocate a slice per group.
//
// initFunc is called when a new group starts. It receives the first value of
// the group and returns the initial accumulator. updateFunc is then called
// for every value of the group, the first one included, and updates the
// accumulator in place. For example, to sum values in each group:
//
//	initFunc := func(v int) int { return 0 }
//	updateFunc := func(acc *int, v int) { *acc += v }
//
// Like GroupBy, GroupByAggregate does not reorder input values.
func GroupByAggregate[In any, K comparable, Out any](
	seq iter.Seq[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) *Iterator[Source[In], Out] {

	return Attach(seq, func(src *Source[In]) (Out, bool) {
		first, ok := src.Next()
		if !ok {
			var zero Out
			return zero, false
		}

		key := keyFunc(first)
		acc := initFunc(first)
		updateFunc(&acc, first)
		for {
			next, ok := src.Peek()
			if !ok || keyFunc(next) != key {
				return acc, true
			}
			src.Next()
			updateFunc(&acc, next)
		}
	})
}

// Take returns an Iterator producing at most the first n values of seq.
//
// The underlying sequence is stopped as soon as the n-th value is pulled, so
// a consumer that stops after n values leaves nothing suspended. This makes
// Take the way to consume a prefix of an unbounded sequence.
func Take[T any](seq iter.Seq[T], n int) *Iterator[Source[T], T] {
	taken := 0
	return Attach(seq, func(src *Source[T]) (T, bool) {
		if taken >= n {
			src.Stop()
			var zero T
			return zero, false
		}
		taken++
		v, ok := src.Next()
		if taken == n {
			src.Stop()
		}
		return v, ok
	})
}
