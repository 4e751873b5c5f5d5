package drills

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-array-drills/arr"
)

// Number is the set of element types accepted by the numeric drills.
type Number interface {
	constraints.Integer | constraints.Float
}

// LogEachValue writes "Value: {value}, index: {index}." to standard output
// for every element, one line each.
func LogEachValue[T any](values []T) {
	FprintEachValue(os.Stdout, values)
}

// FprintEachValue is [LogEachValue] writing to w.
func FprintEachValue[T any](w io.Writer, values []T) {
	arr.EachIndexed(values, func(v T, i int, _ []T) {
		fmt.Fprintf(w, "Value: %v, index: %d.\n", v, i)
	})
}

// MakePeopleHappy sets IsHappy on every person in place.
func MakePeopleHappy(people []Person) {
	for i := range people {
		people[i].IsHappy = true
	}
}

// SetField writes value at the dot-notation key of every record in place.
func SetField(records []Record, key string, value any) {
	arr.Each(records, func(r Record) { arr.Set(r, key, value) })
}

// GetEvenNumbers returns the even values of nums, zero and negatives
// included, in their original order.
func GetEvenNumbers[T constraints.Integer](nums []T) []T {
	return arr.Filter(nums, func(n T) bool { return n%2 == 0 })
}

// DoubleEveryNumber returns a new slice with every value multiplied by two.
func DoubleEveryNumber[T Number](nums []T) []T {
	return arr.Map(nums, func(n T) T { return n * 2 })
}

// ConvertToBooleans returns the truthiness of each value (see arr.Truthy).
func ConvertToBooleans(values []any) []bool {
	return arr.Map(values, arr.Truthy)
}

// MyEvery reports whether fn holds for every value. Empty input is true.
func MyEvery[T any](values []T, fn func(T) bool) bool {
	return arr.Every(values, fn)
}
