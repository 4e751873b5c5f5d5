package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-array-drills/arr"
	"github.com/hasbyte1/go-array-drills/collections"
)

func TestMap(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got.All())
}

func TestMapTruthy(t *testing.T) {
	got := collections.Map(collections.New[any]("", true, 0, "Hello"), arr.Truthy)
	assert.Equal(t, []bool{false, true, false, true}, got.All())
}

func TestReduce(t *testing.T) {
	sum := collections.Reduce(ints(1, 2, 3, 4), func(acc, n int) int { return acc + n }, 0)
	assert.Equal(t, 10, sum)

	joined := collections.Reduce(ints(1, 2), func(acc string, n int) string { return acc + strconv.Itoa(n) }, ">")
	assert.Equal(t, ">12", joined)
}
