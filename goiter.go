package itermap

import (
	"errors"
	"iter"

	go_iterators "github.com/lezhnev74/go-iterators"
	"golang.org/x/xerrors"
)

// IteratorSource adapts a go-iterators Iterator into an Iterable, so that
// callbacks can be attached to it with AttachAll.
type IteratorSource[T any] struct {
	it  go_iterators.Iterator[T]
	err error
}

// FromIterator wraps it. The wrapped iterator is closed once the sequence
// returned by All ends, whether it was drained or abandoned.
func FromIterator[T any](it go_iterators.Iterator[T]) *IteratorSource[T] {
	return &IteratorSource[T]{it: it}
}

// All yields the values of the wrapped iterator until it reports
// go_iterators.EmptyIterator.
//
// Any other error ends the sequence and is reported by Err.
func (s *IteratorSource[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer s.close()

		for {
			v, err := s.it.Next()
			if errors.Is(err, go_iterators.EmptyIterator) {
				return
			}
			if err != nil {
				s.err = xerrors.Errorf("source iterator: %w", err)
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Err returns the first error that ended iteration early, or nil.
func (s *IteratorSource[T]) Err() error {
	return s.err
}

func (s *IteratorSource[T]) close() {
	err := s.it.Close()
	if err == nil || errors.Is(err, go_iterators.ClosedIterator) {
		return
	}
	if s.err == nil {
		s.err = xerrors.Errorf("close source iterator: %w", err)
	}
}
