package collections

// Enumerable is the read-only interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on the concrete
// *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item) for every item.
	Each(fn func(T))

	// Every reports whether fn holds for all items.
	Every(fn func(T) bool) bool

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T) bool) *Collection[T]

	// Find returns the first item matching fn, or the zero value and false.
	Find(fn func(T) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
