package itermap_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KasperOmsK/itermap"
	"github.com/KasperOmsK/itermap/internal/iterx"
)

// Example injects a zero after every two values of the source.
func Example() {
	i := 0
	it := itermap.Attach(slices.Values([]int{1, 2, 3, 4, 5, 6}), func(src *itermap.Source[int]) (int, bool) {
		i++
		if i%3 == 0 {
			return 0, true
		}
		return src.Next()
	})

	fmt.Println(slices.Collect(it.All()))
	// Output: [1 2 0 3 4 0 5 6 0]
}

// Example_peek doubles every other 'o' by writing a '0' in front of it.
// The callback peeks at the source and only advances it when it does not
// inject the '0'.
func Example_peek() {
	marked := false
	it := itermap.Attach(iterx.Runes("hello world!"), func(src *itermap.Source[rune]) (rune, bool) {
		r, ok := src.Peek()
		if !ok {
			return 0, false
		}
		if r == 'o' {
			marked = !marked
			if marked {
				return '0', true
			}
		}
		return src.Next()
	})

	var sb strings.Builder
	for r := range it.All() {
		sb.WriteRune(r)
	}
	fmt.Println(sb.String())
	// Output: hell0o w0orld!
}

// Example_chunks composes two levels of iterators over one shared Source.
func Example_chunks() {
	chunks := itermap.Attach(slices.Values([]int{1, 2, 3, 4, 5, 6, 7}), func(src *itermap.Source[int]) (*itermap.Iterator[int, int], bool) {
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

	for chunk := range chunks.All() {
		fmt.Println(slices.Collect(chunk.All()))
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
	// [7]
}

func ExampleFromFunc() {
	n := 0
	counter := itermap.FromFunc(func() (int, bool) {
		n++
		return n - 1, true
	})

	fmt.Println(slices.Collect(itermap.Take(counter.All(), 5).All()))
	// Output: [0 1 2 3 4]
}

func ExampleGroupBy() {
	words := slices.Values([]string{"apple", "avocado", "banana", "blueberry", "cherry", "apricot"})

	groups := itermap.GroupBy(words, func(w string) byte { return w[0] })
	for g := range groups.All() {
		fmt.Println(g)
	}
	// Output:
	// [apple avocado]
	// [banana blueberry]
	// [cherry]
	// [apricot]
}
