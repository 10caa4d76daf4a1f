package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}

// Runes yields the runes of s in order.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				break
			}
		}
	}
}

// Counter yields an endless sequence of n, n+1, n+2, ...
// Every item is counted in *pulls, so tests can check how far a consumer
// advanced it.
func Counter(n int, pulls *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for ; ; n++ {
			*pulls++
			if !yield(n) {
				return
			}
		}
	}
}
