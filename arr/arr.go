package arr

import "sort"

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn once for every element of items, in order.
func Each[T any](items []T, fn func(T)) {
	for _, item := range items {
		fn(item)
	}
}

// EachIndexed calls fn(item, index, items) for every element, in order.
// The full slice is passed through unchanged; fn must not resize it.
func EachIndexed[T any](items []T, fn func(T, int, []T)) {
	for i, item := range items {
		fn(item, i, items)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns the results in a new slice of
// the same length.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Filter returns the elements for which fn returns true, preserving order.
// The result is never nil.
func Filter[T any](items []T, fn func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fn(item) {
			out = append(out, item)
		}
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying fn.
// Returns the zero value and false when no element matches.
func Find[T any](items []T, fn func(T) bool) (T, bool) {
	for _, item := range items {
		if fn(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Search returns the index of the first element satisfying fn, or -1.
func Search[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Every reports whether fn holds for every element. It stops at the first
// element that fails. An empty slice yields true.
func Every[T any](items []T, fn func(T) bool) bool {
	for _, item := range items {
		if !fn(item) {
			return false
		}
	}
	return true
}

// Some reports whether at least one element satisfies fn.
func Some[T any](items []T, fn func(T) bool) bool {
	return Search(items, fn) >= 0
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their input order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortFunc returns a stably sorted copy of items ordered by cmp, which
// returns a negative number when a sorts before b, zero when they are
// equal and a positive number otherwise.
func SortFunc[T any](items []T, cmp func(a, b T) int) []T {
	return Sort(items, func(a, b T) bool { return cmp(a, b) < 0 })
}
