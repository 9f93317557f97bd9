package listutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Reax1x/springside4/listutil"
)

func TestReverse(t *testing.T) {
	testCases := []struct {
		given, expected []int
	}{
		{nil, nil},
		{[]int{}, []int{}},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, listutil.Reverse(tc.given))
	}
}
