package itermap

import "iter"

// Callback produces the next item of an Iterator.
//
// It receives a pointer to the state owned by the Iterator and returns the
// next item along with true, or false once the sequence has ended.
// Anything the callback needs to remember between calls besides the state
// (counters, flags) lives in its closure.
type Callback[D, R any] func(state *D) (R, bool)

// Iterator is a lazy sequence of R driven by a Callback and the state it
// mutates.
//
// An Iterator must not be copied after first use and is not safe for
// concurrent use.
type Iterator[D, R any] struct {
	state    D
	callback Callback[D, R]
}

// New returns an Iterator that owns state and hands a pointer to it to
// callback on every call to Next.
//
// New does not invoke callback.
func New[D, R any](state D, callback Callback[D, R]) *Iterator[D, R] {
	return &Iterator[D, R]{
		state:    state,
		callback: callback,
	}
}

// FromFunc returns an Iterator whose items are produced by fn alone.
//
// It is the stateless counterpart of New: fn keeps whatever it needs in its
// closure.
func FromFunc[R any](fn func() (R, bool)) *Iterator[struct{}, R] {
	return New(struct{}{}, func(*struct{}) (R, bool) {
		return fn()
	})
}

// Next invokes the callback once and returns its result unchanged.
//
// The Iterator does not remember that the sequence ended: calling Next again
// after it returned false invokes the callback again, and the result is
// whatever the callback decides. Panics raised by the callback are not
// recovered.
func (it *Iterator[D, R]) Next() (R, bool) {
	return it.callback(&it.state)
}

// All returns an iter.Seq that pulls items from the Iterator until the
// callback reports the end of the sequence or the consumer stops.
//
// The returned sequence shares the Iterator: ranging over it twice resumes
// where the previous range stopped.
func (it *Iterator[D, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop releases the state when it holds a resource, that is when *D or D
// has a Stop method. This covers a Source held by value as well as a
// *Source shared between iterators. It is a no-op otherwise.
//
// Iterators built with Attach should be stopped when they are abandoned
// before their end.
func (it *Iterator[D, R]) Stop() {
	if s, ok := any(&it.state).(interface{ Stop() }); ok {
		s.Stop()
		return
	}
	if s, ok := any(it.state).(interface{ Stop() }); ok {
		s.Stop()
	}
}
