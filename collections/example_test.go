package collections_test

import (
	"fmt"

	"github.com/hasbyte1/go-array-drills/collections"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	fmt.Println(c.Count(), c)
	// Output: 5 [1,2,3,4,5]
}

func ExampleCollection_Filter() {
	result := collections.New(10, 20, 30, 50, 100, 300).
		Filter(func(n int) bool { return n > 50 }).
		All()
	fmt.Println(result)
	// Output: [100 300]
}

func ExampleCollection_SortFunc() {
	result := collections.New(100, 20, 5, 10, 84).
		SortFunc(func(a, b int) int { return b - a }).
		Take(3).
		All()
	fmt.Println(result)
	// Output: [100 84 20]
}

func ExampleMap() {
	lengths := collections.Map(collections.New("Alice", "Bob", "Charlie"),
		func(s string) int { return len(s) })
	fmt.Println(lengths.All())
	// Output: [5 3 7]
}
