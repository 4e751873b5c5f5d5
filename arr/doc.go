// Package arr provides standalone generic helpers for Go slices: iteration,
// mapping, filtering, searching, universal checks and stable sorting, plus
// dot-notation access to map[string]any records.
//
// # Slice helpers
//
// All slice helpers operate on plain []T values and never modify their
// input; every transformation returns a freshly allocated slice:
//
//	evens  := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) bool { return n%2 == 0 })
//	names  := arr.Map(users, func(u User) string { return u.Name })
//	first, ok := arr.Find(users, func(u User) bool { return u.Height > 30 })
//	sorted := arr.SortFunc(users, func(a, b User) int { return b.Height - a.Height })
//
// Absence is reported with the comma-ok idiom: [Find] returns the zero value
// and false when nothing matches.
//
// # Truthiness
//
// [Truthy] converts arbitrary values to booleans using an explicit rule
// table (nil, false, "", zero and NaN are false).
//
// # Dot-notation map access
//
//	arr.Get(record, "profile.order")
//	arr.Set(record, "isHappy", true)
//	arr.Has(record, "name")
package arr
