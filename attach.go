package itermap

import "iter"

// Iterable is implemented by values that can be converted into an iter.Seq,
// following the All method convention of the standard library containers.
//
// *Iterator is an Iterable, so iterators can be attached to each other.
type Iterable[T any] interface {
	All() iter.Seq[T]
}

// Attach converts seq into a Source and returns an Iterator that hands that
// Source to callback on every pull.
//
// The callback decides, per pull, whether to advance the Source, skip items,
// substitute items of its own, or end the sequence. Its item type R is
// independent of T.
//
// Attach is equivalent to New(SourceOf(seq), callback).
func Attach[T, R any](seq iter.Seq[T], callback Callback[Source[T], R]) *Iterator[Source[T], R] {
	return New(SourceOf(seq), callback)
}

// AttachAll is Attach for any Iterable. It is equivalent to
// Attach(src.All(), callback).
func AttachAll[T, R any](src Iterable[T], callback Callback[Source[T], R]) *Iterator[Source[T], R] {
	return Attach(src.All(), callback)
}
