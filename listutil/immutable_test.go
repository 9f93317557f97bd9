package listutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reax1x/springside4/listutil"
)

func TestEmptyImmutable(t *testing.T) {
	l := listutil.EmptyImmutable[int]()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, []int{}, l.Slice())
}

func TestSingleton(t *testing.T) {
	l := listutil.Singleton("x")
	require.Equal(t, 1, l.Len())
	assert.Equal(t, "x", l.Get(0))
}

func TestImmutableOfIsDefensive(t *testing.T) {
	src := []int{1, 2}
	l := listutil.ImmutableOf(src...)

	src[0] = 42
	assert.Equal(t, 1, l.Get(0))
}

func TestFreezeIsView(t *testing.T) {
	src := []int{1, 2}
	l := listutil.Freeze(src)

	src[0] = 42
	assert.Equal(t, 42, l.Get(0))

	// Slice copies out, so the copy is detached.
	out := l.Slice()
	out[1] = 7
	assert.Equal(t, 2, src[1])
}

func TestPrepend(t *testing.T) {
	l := listutil.Prepend(0, []int{1, 2})
	assert.Equal(t, []int{0, 1, 2}, l.Slice())

	l = listutil.Prepend(1, nil)
	assert.Equal(t, []int{1}, l.Slice())
}

func TestImmutableValues(t *testing.T) {
	var got []int
	for v := range listutil.ImmutableOf(1, 2, 3).Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}
