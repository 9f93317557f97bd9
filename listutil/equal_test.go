package listutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Reax1x/springside4/listutil"
)

func TestEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b []int
		want bool
	}{
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"prefix", []int{1, 2}, []int{1, 2, 3}, false},
		{"same elements different order", []int{1, 2}, []int{2, 1}, false},
		{"both nil", nil, nil, true},
		{"nil vs non-empty", nil, []int{1}, false},
		{"nil vs empty", nil, []int{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, listutil.Equal(tc.a, tc.b))
			assert.Equal(t, tc.want, listutil.Equal(tc.b, tc.a))
		})
	}

	s := []int{1, 2, 3}
	assert.True(t, listutil.Equal(s, s))
}

func TestEqualFunc(t *testing.T) {
	eq := strings.EqualFold
	assert.True(t, listutil.EqualFunc([]string{"A", "b"}, []string{"a", "B"}, eq))
	assert.False(t, listutil.EqualFunc([]string{"a"}, []string{"b"}, eq))
}
