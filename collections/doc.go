// Package collections provides a generic, fluent Collection type layered on
// the slice helpers of package arr.
//
// # Overview
//
// The central type is [Collection][T], a wrapper around a slice of T that
// exposes a chainable API:
//
//	top := collections.New(100, 20, 5, 10, 84).
//	    SortFunc(func(a, b int) int { return b - a }).
//	    Take(3).
//	    All() // → [100 84 20]
//
// # Immutability
//
// All transformation methods return a *new* Collection, leaving the original
// unchanged.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
// [Map] and [Reduce].
package collections
