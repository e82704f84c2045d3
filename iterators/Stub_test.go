package iterators_test

import (
	"testing"

	"go.llib.dev/sequence/iterators"

	"go.llib.dev/testcase/assert"
)

func TestStub(t *testing.T) {
	t.Run("by default it proxies to the wrapped iterator", func(t *testing.T) {
		stub := iterators.Stub(iterators.Slice([]int{1, 2}))
		assert.Equal(t, []int{1, 2}, iterators.Collect[int](stub))
	})

	t.Run("Next can be stubbed", func(t *testing.T) {
		stub := iterators.Stub(iterators.Slice([]int{1, 2}))
		stub.StubNext = func() bool { return false }
		assert.False(t, stub.Next())

		stub.ResetNext()
		assert.True(t, stub.Next())
	})

	t.Run("Value can be stubbed", func(t *testing.T) {
		stub := iterators.Stub(iterators.Slice([]int{1, 2}))
		stub.StubValue = func() int { return 42 }
		assert.True(t, stub.Next())
		assert.Equal(t, 42, stub.Value())

		stub.ResetValue()
		assert.Equal(t, 1, stub.Value())
	})
}
