package drills

import (
	"cmp"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-array-drills/arr"
)

// SortWords returns words in ascending byte order. Uppercase letters sort
// before lowercase ones.
func SortWords(words []string) []string {
	return arr.Sort(words, func(a, b string) bool { return a < b })
}

// SortNumbers returns nums in ascending numeric order. NaN sorts first.
func SortNumbers[T Number](nums []T) []T {
	return arr.Sort(nums, cmp.Less[T])
}

// SortNumbersBetter sorts ascending, or descending when desc[0] is true.
// The descending result is the exact reverse of the ascending one.
func SortNumbersBetter[T Number](nums []T, desc ...bool) []T {
	sorted := SortNumbers(nums)
	if len(desc) > 0 && desc[0] {
		return arr.Reverse(sorted)
	}
	return sorted
}

// SortUsersByOrder returns users in ascending Order. Ties keep input order.
func SortUsersByOrder(users []User) []User {
	return arr.Sort(users, func(a, b User) bool { return a.Order < b.Order })
}

// SortUsersByName returns users in ascending, case-sensitive Name order.
// Ties keep input order.
func SortUsersByName(users []User) []User {
	return arr.SortFunc(users, func(a, b User) int { return strings.Compare(a.Name, b.Name) })
}

// SortRecordsBy returns records ordered by the value at the dot-notation
// key. Numbers compare numerically and strings by code point; numbers sort
// before strings, and records whose field is missing or of another type
// sort last in either direction. Ties keep input order.
func SortRecordsBy(records []Record, key string, desc bool) []Record {
	return arr.SortFunc(records, func(a, b Record) int {
		ra, rb := rankOf(a, key), rankOf(b, key)
		if ra.class != rb.class {
			return ra.class - rb.class
		}
		c := ra.compare(rb)
		if desc {
			return -c
		}
		return c
	})
}

const (
	classNumber = iota
	classString
	classOther
)

type rank struct {
	class int
	num   float64
	str   string
}

func rankOf(r Record, key string) rank {
	v, ok := arr.Lookup(r, key)
	if !ok || v == nil {
		return rank{class: classOther}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rank{class: classNumber, num: float64(rv.Int())}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rank{class: classNumber, num: float64(rv.Uint())}
	case reflect.Float32, reflect.Float64:
		return rank{class: classNumber, num: rv.Float()}
	case reflect.String:
		return rank{class: classString, str: rv.String()}
	}
	return rank{class: classOther}
}

func (r rank) compare(o rank) int {
	switch r.class {
	case classNumber:
		return cmp.Compare(r.num, o.num)
	case classString:
		return strings.Compare(r.str, o.str)
	}
	return 0
}
