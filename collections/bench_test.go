package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-typed-collections/collections"
)

// makeInts creates a Collection[int] of size n for benchmarks.
func makeInts(n int) *collections.Collection[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return collections.Of(items...)
}

// makeMixedInts returns n ints boxed as any, so that an int-declared
// collection built from them validates every item at run time.
func makeMixedInts(n int) []any {
	items := make([]any, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func BenchmarkNewValidated(b *testing.B) {
	items := makeMixedInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := collections.From(collections.Int, items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFilter(b *testing.B) {
	c := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Filter(func(n, _ int) bool { return n%2 == 0 })
	}
}

func BenchmarkSort(b *testing.B) {
	c := makeInts(10_000).Shuffle() // pre-shuffle once
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort(func(a, b int) int { return a - b })
	}
}

func BenchmarkSortNatural(b *testing.B) {
	c := makeInts(10_000).Shuffle()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Sort()
	}
}

func BenchmarkUnique(b *testing.B) {
	// 50% duplicates
	items := make([]int, 10_000)
	for i := range items {
		items[i] = i % 5000
	}
	c := collections.Of(items...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Unique()
	}
}

func BenchmarkDiff(b *testing.B) {
	c := makeInts(10_000)
	other := makeInts(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Diff(other)
	}
}

func BenchmarkSearch(b *testing.B) {
	c := makeInts(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Search(999)
	}
}
