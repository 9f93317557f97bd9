package listutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Reax1x/springside4/listutil"
)

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	testCases := []struct {
		name            string
		given, expected []int
	}{
		{"mixed", []int{1, 2, 3, 4, 5, 6}, []int{2, 4, 6}},
		{"none kept", []int{1, 3, 5}, []int{}},
		{"all kept", []int{2, 4}, []int{2, 4}},
		{"nil", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, listutil.Filter(tc.given, even))
		})
	}
}

func TestFilterLeavesOriginal(t *testing.T) {
	orig := []int{1, 2, 3}

	got := listutil.Filter(orig, func(v int) bool { return v > 1 })
	assert.Equal(t, []int{2, 3}, got)

	got[0] = 42
	assert.Equal(t, []int{1, 2, 3}, orig)
}

func TestFilterNamedSliceType(t *testing.T) {
	type ints []int
	got := listutil.Filter(ints{1, 2, 3}, func(v int) bool { return v != 2 })
	assert.Equal(t, ints{1, 3}, got)
}
