package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-array-drills/arr"
)

func makeInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = n - i
	}
	return items
}

func BenchmarkFilter(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Filter(items, func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkMap(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.Map(items, func(n int) int { return n * 2 })
	}
}

func BenchmarkSortFunc(b *testing.B) {
	items := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr.SortFunc(items, func(a, b int) int { return a - b })
	}
}
