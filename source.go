package itermap

import "iter"

// Source is a pull-style view of an iter.Seq. It is the state handed to the
// callbacks of iterators built with Attach.
//
// Once a Source reports the end of its sequence it keeps doing so.
// The zero value is an empty Source.
type Source[T any] struct {
	next func() (T, bool)
	stop func()

	head   T
	headOK bool
	peeked bool
}

// SourceOf converts seq into a Source. A nil seq yields an empty Source.
//
// The Source holds seq suspended between pulls; call Stop to release it if
// it is abandoned before being exhausted.
func SourceOf[T any](seq iter.Seq[T]) Source[T] {
	if seq == nil {
		return Source[T]{}
	}
	next, stop := iter.Pull(seq)
	return Source[T]{
		next: next,
		stop: stop,
	}
}

// Next advances the Source and returns the next item, or false once the
// underlying sequence is exhausted or stopped.
func (s *Source[T]) Next() (T, bool) {
	if s.peeked {
		v, ok := s.head, s.headOK
		var zero T
		s.head, s.headOK, s.peeked = zero, false, false
		return v, ok
	}
	return s.pull()
}

// Peek returns the item the next call to Next will return, without
// consuming it.
func (s *Source[T]) Peek() (T, bool) {
	if !s.peeked {
		s.head, s.headOK = s.pull()
		s.peeked = true
	}
	return s.head, s.headOK
}

// Stop releases the underlying sequence. It is safe to call Stop more than
// once, or on a nil *Source; afterwards the Source is empty.
func (s *Source[T]) Stop() {
	if s == nil {
		return
	}
	if s.stop != nil {
		s.stop()
	}
	var zero T
	s.head, s.headOK, s.peeked = zero, false, false
}

func (s *Source[T]) pull() (T, bool) {
	if s.next == nil {
		var zero T
		return zero, false
	}
	return s.next()
}
