package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-array-drills/arr"
)

// Collection is a generic, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection may be read from several
// goroutines at once.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(100, 20, 5, 10, 84).
//	    Filter(func(n int) bool { return n > 5 }).
//	    SortFunc(func(a, b int) int { return b - a }).
//	    All() // → [100 84 20 10]
//
// Operations that change the element type are package-level functions
// (see [Map]).
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// String returns a JSON representation of the collection, falling back to
// %v formatting for items JSON cannot encode (NaN, channels, …).
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item) for every item.
func (c *Collection[T]) Each(fn func(T)) {
	arr.Each(c.items, fn)
}

// EachIndexed calls fn(item, index, items) for every item. The slice passed
// to fn is a copy.
func (c *Collection[T]) EachIndexed(fn func(T, int, []T)) {
	arr.EachIndexed(c.All(), fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first item satisfying fn.
// Returns the zero value and false when no item matches.
func (c *Collection[T]) Find(fn func(T) bool) (T, bool) {
	return arr.Find(c.items, fn)
}

// FindOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FindOrFail(fn func(T) bool) (T, error) {
	item, ok := c.Find(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Every reports whether fn holds for all items. True for an empty collection.
func (c *Collection[T]) Every(fn func(T) bool) bool {
	return arr.Every(c.items, fn)
}

// Some reports whether at least one item satisfies fn.
func (c *Collection[T]) Some(fn func(T) bool) bool {
	return arr.Some(c.items, fn)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which fn returns
// true.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	return &Collection[T]{items: arr.Filter(c.items, fn)}
}

// Reject returns a new collection with items for which fn returns true
// removed. It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T) bool { return !fn(item) })
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return &Collection[T]{items: arr.Reverse(c.items)}
}

// Sort returns a new collection sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (c *Collection[T]) Sort(less func(a, b T) bool) *Collection[T] {
	return &Collection[T]{items: arr.Sort(c.items, less)}
}

// SortFunc returns a new collection stably sorted by a three-way comparator.
func (c *Collection[T]) SortFunc(cmp func(a, b T) int) *Collection[T] {
	return &Collection[T]{items: arr.SortFunc(c.items, cmp)}
}

// Take returns at most n items from the start.
// A negative n returns items from the end (e.g. Take(-3) ≡ last 3 items).
func (c *Collection[T]) Take(n int) *Collection[T] {
	total := len(c.items)
	if n < 0 {
		start := total + n
		if start < 0 {
			start = 0
		}
		return From(c.items[start:])
	}
	if n > total {
		n = total
	}
	return From(c.items[:n])
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}
