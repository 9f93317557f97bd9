package listutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Reax1x/springside4/listutil"
)

func TestUnion(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []int
		expected []int
	}{
		{"duplicates kept", []int{1, 2}, []int{2, 3}, []int{1, 2, 2, 3}},
		{"empty right", []int{1, 2}, nil, []int{1, 2}},
		{"empty left", nil, []int{1, 2}, []int{1, 2}},
		{"both empty", nil, nil, []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := listutil.Union(tc.a, tc.b)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, len(tc.a)+len(tc.b), cap(got))
		})
	}
}

func TestUnionCopies(t *testing.T) {
	a := []int{1}
	got := listutil.Union(a, []int{2})
	got[0] = 42
	assert.Equal(t, []int{1}, a)
}
