package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/sequence/iterators"
)

func TestCount_ValuesGiven_AllElementCountedUp(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{1, 2, 3})
	require.Equal(t, 3, iterators.Count[int](i))
}

func TestCount_EmptyIteratorGiven_ZeroReturned(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, iterators.Count(iterators.Empty[int]()))
}

func TestCount_CompositionGiven_OnlyPassedValuesCounted(t *testing.T) {
	t.Parallel()

	i := iterators.Filter(iterators.Slice([]int{1, 2, 3, 4}), func(n int) bool { return n%2 == 0 })
	require.Equal(t, 2, iterators.Count(i))
}
