package iterators_test

import (
	"testing"

	"go.llib.dev/sequence/iterators"

	"go.llib.dev/testcase/assert"
)

func TestOffset(t *testing.T) {
	t.Run("the first n values are skipped", func(t *testing.T) {
		i := iterators.Offset(iterators.Slice([]int{1, 2, 3, 4, 5}), 2)
		assert.Equal(t, []int{3, 4, 5}, iterators.Collect(i))
	})

	t.Run("when the offset is larger than the upstream", func(t *testing.T) {
		i := iterators.Offset(iterators.Slice([]int{1, 2}), 3)
		assert.False(t, i.Next())
	})

	t.Run("zero offset leaves the iteration untouched", func(t *testing.T) {
		i := iterators.Offset(iterators.Slice([]int{1, 2}), 0)
		assert.Equal(t, []int{1, 2}, iterators.Collect(i))
	})
}
