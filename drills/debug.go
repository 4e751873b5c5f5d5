package drills

import (
	"fmt"
	"io"
	"os"

	"github.com/hasbyte1/go-array-drills/arr"
)

// LogEachName prints every name followed by its index and the whole slice,
// one line per name:
//
//	Alice 0 [Alice Bob]
//	Bob 1 [Alice Bob]
func LogEachName(names []string) {
	FprintEachName(os.Stdout, names)
}

// FprintEachName is [LogEachName] writing to w.
func FprintEachName(w io.Writer, names []string) {
	arr.EachIndexed(names, func(name string, i int, all []string) {
		fmt.Fprintln(w, name, i, all)
	})
}

// LogEachUserBio prints the Bio of every user, one line each.
func LogEachUserBio(users []User) {
	FprintEachUserBio(os.Stdout, users)
}

// FprintEachUserBio is [LogEachUserBio] writing to w.
func FprintEachUserBio(w io.Writer, users []User) {
	arr.Each(users, func(u User) { fmt.Fprintln(w, u.Bio) })
}

// SortUsersBy returns a copy of users ordered by cmp.
func SortUsersBy(users []User, cmp func(a, b User) int) []User {
	return arr.SortFunc(users, cmp)
}
