package listutil_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Reax1x/springside4/listutil"
)

func TestBinarySearch(t *testing.T) {
	testCases := []struct {
		name     string
		s        []int
		key      int
		expected int
	}{
		{"found first", []int{1, 3, 5, 7}, 1, 0},
		{"found middle", []int{1, 3, 5, 7}, 5, 2},
		{"found last", []int{1, 3, 5, 7}, 7, 3},
		{"absent middle", []int{1, 3, 5, 7}, 4, -3},
		{"absent before all", []int{1, 3, 5, 7}, 0, -1},
		{"absent after all", []int{1, 3, 5, 7}, 9, -5},
		{"empty", []int{}, 1, -1},
		{"nil", nil, 1, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := listutil.BinarySearch(tc.s, tc.key)
			assert.Equal(t, tc.expected, got)
			if got < 0 {
				assert.Equal(t, -(got)-1, listutil.InsertionPoint(got))
			}
		})
	}
}

func TestBinarySearchInsertionPoint(t *testing.T) {
	got := listutil.BinarySearch([]int{1, 3, 5, 7}, 4)
	assert.Negative(t, got)
	assert.Equal(t, 2, listutil.InsertionPoint(got))
}

func TestBinarySearchFunc(t *testing.T) {
	s := []string{"a", "bb", "ccc"}
	byLen := func(a, b string) int { return cmp.Compare(len(a), len(b)) }

	assert.Equal(t, 1, listutil.BinarySearchFunc(s, "xx", byLen))
	assert.Equal(t, -4, listutil.BinarySearchFunc(s, "xxxx", byLen))
}
