package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/sequence/iterators"
)

func TestLast_ValuesGiven_FinalValueReturned(t *testing.T) {
	t.Parallel()

	var expected = 42

	v, found := iterators.Last(iterators.Slice([]int{4, 2, expected}))
	require.True(t, found)
	require.Equal(t, expected, v)
}

func TestLast_IteratorFullyConsumed(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{1, 2, 3})
	_, _ = iterators.Last[int](i)
	require.False(t, i.Next())
}

func TestLast_WhenIteratorIsEmpty_NotFoundReturned(t *testing.T) {
	t.Parallel()

	_, found := iterators.Last(iterators.Empty[int]())
	require.False(t, found)
}
