package collections

import "github.com/hasbyte1/go-array-drills/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions:
//
//	flags := collections.Map(collections.New[any]("", 0, "x"), arr.Truthy)
//	// → [false false true]

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return &Collection[U]{items: arr.Map(c.items, fn)}
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	result := initial
	arr.Each(c.items, func(item T) { result = fn(result, item) })
	return result
}
