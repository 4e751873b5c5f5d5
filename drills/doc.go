// Package drills implements the classic array exercises on top of package
// arr: logging each value, flag setting, even selection, doubling, boolean
// coercion, a universal check and a family of sorts over numbers, words and
// user records.
//
// Every function except [MakePeopleHappy] and [SetField] leaves its input
// untouched and returns a new slice. Those two write a single field of each
// element in place.
//
//	drills.GetEvenNumbers([]int{1, 0, -3})                   // [0]
//	drills.ConvertToBooleans([]any{"", true, math.NaN()})   // [false true false]
//	drills.SortNumbersBetter([]int{100, 20, 5, 10, 84}, true) // [100 84 20 10 5]
//
// The Log* functions write to standard output; the matching Fprint* forms
// accept any io.Writer.
package drills
