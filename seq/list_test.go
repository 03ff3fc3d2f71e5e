package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func TestConsSharesTail(t *testing.T) {
	base := Of(2, 3)
	a := Cons(1, base)
	b := Cons(9, base)

	assert.Equal(t, []int{1, 2, 3}, a.Slice())
	assert.Equal(t, []int{9, 2, 3}, b.Slice())
	assert.Equal(t, []int{2, 3}, base.Slice())
	assert.Equal(t, 3, a.Len())
}

func TestZeroValueIsEmpty(t *testing.T) {
	var l List[string]

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())
	_, ok := l.Head()
	assert.False(t, ok)
	_, ok = l.First(func(string) bool { return true })
	assert.False(t, ok)
	assert.Empty(t, l.Slice())
}

func TestWithoutRemovesOnlyFirstMatch(t *testing.T) {
	l := Of(1, 2, 3, 4)

	rest, removed, ok := l.Without(isEven)

	require.True(t, ok)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 4}, rest.Slice())
	assert.Equal(t, 3, rest.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, l.Slice(), "source list must be untouched")
}

func TestWithoutNoMatch(t *testing.T) {
	l := Of(1, 3, 5)

	rest, _, ok := l.Without(isEven)

	assert.False(t, ok)
	assert.Equal(t, l, rest)
}

func TestWithoutHead(t *testing.T) {
	l := Of(2, 1)

	rest, removed, ok := l.Without(isEven)

	require.True(t, ok)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1}, rest.Slice())
}

func TestFirst(t *testing.T) {
	v, ok := Of(1, 4, 6).First(isEven)

	assert.True(t, ok)
	assert.Equal(t, 4, v)
}

func TestMapPreservesOrder(t *testing.T) {
	out := Map(func(n int) string { return string(rune('a' + n)) }, Of(0, 1, 2))

	assert.Equal(t, []string{"a", "b", "c"}, out.Slice())
}

func TestReverse(t *testing.T) {
	l := Of(1, 2, 3)

	assert.Equal(t, []int{3, 2, 1}, l.Reverse().Slice())
	assert.Equal(t, []int{1, 2, 3}, l.Slice())
}

func TestEachAndAll(t *testing.T) {
	l := Of(1, 2, 3)

	var each []int
	l.Each(func(n int) { each = append(each, n) })
	assert.Equal(t, []int{1, 2, 3}, each)

	var all []int
	for n := range l.All() {
		if n == 3 {
			break
		}
		all = append(all, n)
	}
	assert.Equal(t, []int{1, 2}, all)
}
