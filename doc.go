/*
Package itermap builds iterators out of a stateful callback and a piece of
state that is handed to the callback on every pull.

An Iterator owns one state value and one Callback. Each call to Next invokes
the callback exactly once with a pointer to the state and returns whatever
the callback returns. The Iterator adds no filtering, caching or end
condition of its own: the sequence ends when the callback says so, and a
callback that never says so produces an unbounded sequence.

	// An endless counter with no state besides its closure.
	n := 0
	counter := itermap.FromFunc(func() (int, bool) {
		n++
		return n - 1, true
	})

Attach is the common case: the state is another sequence, converted into a
Source the callback can advance, peek at, or ignore. The item type of the
result is chosen by the callback and does not have to match the source.

	i := 0
	it := itermap.Attach(slices.Values([]int{1, 2, 3, 4, 5, 6}), func(src *itermap.Source[int]) (int, bool) {
		i++
		if i%3 == 0 {
			return 0, true // inject a value without advancing src
		}
		return src.Next()
	})

	slices.Collect(it.All()) // [1 2 0 3 4 0 5 6 0]

AttachAll does the same for any Iterable, including another *Iterator and
go-iterators iterators wrapped with FromIterator. Map, Filter, Chunk, GroupBy
and Take are ready-made callbacks built this way.

# Sharing a source between iterators

Callbacks are closures, so two iterators can cooperate on the same Source by
capturing a pointer to it. The outer iterator below produces one inner
iterator per chunk, and every inner iterator advances the outer's Source
directly:

	chunks := itermap.Attach(seq, func(src *itermap.Source[int]) (*itermap.Iterator[int, int], bool) {
		if _, ok := src.Peek(); !ok {
			return nil, false
		}
		return itermap.New(3, func(left *int) (int, bool) {
			if *left == 0 {
				return 0, false
			}
			*left--
			return src.Next()
		}), true
	})

Each inner iterator must be drained before the next chunk is pulled, since
they all read from the same Source. Nothing is synchronized: iterators and
the state they share must stay on one goroutine, or be guarded by the caller.

# Ending the sequence

Next does not remember that a sequence ended. Pulling again after the
callback returned false calls the callback again. Sources are fused, so
callbacks that only delegate to their Source stay exhausted, but a callback
that injects values keeps injecting them. Consumers such as All stop at the
first end.

A Source holds its sequence suspended between pulls. Iterators built with
Attach that are abandoned before their end should be released with Stop.
*/
package itermap
