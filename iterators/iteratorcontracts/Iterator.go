// Package iteratorcontracts provide a reusable specification
// that every Iterator implementation is expected to pass.
package iteratorcontracts

import (
	"testing"

	"go.llib.dev/sequence/iterators"

	"go.llib.dev/testcase"
)

// Iterator is the contract of the iterators.Iterator behavior.
// The received constructor must return an iterator that has at least one value to yield.
type Iterator[V any] func(tb testing.TB) iterators.Iterator[V]

func (c Iterator[V]) Spec(s *testcase.Spec) {
	s.Describe("it behaves like an iterator", func(s *testcase.Spec) {
		subject := testcase.Let(s, func(t *testcase.T) iterators.Iterator[V] {
			return c(t)
		})

		s.Then("values can be collected from the iterator", func(t *testcase.T) {
			t.Must.NotEmpty(iterators.Collect[V](subject.Get(t)))
		})

		s.Then("each value is yielded exactly once", func(t *testcase.T) {
			expected := iterators.Collect[V](c(t))

			var got []V
			iter := subject.Get(t)
			for iter.Next() {
				got = append(got, iter.Value())
			}
			t.Must.Equal(expected, got)
		})

		s.Then("exhaustion is a terminal state", func(t *testcase.T) {
			iter := subject.Get(t)
			for iter.Next() {
			}
			t.Random.Repeat(3, 7, func() {
				t.Must.False(iter.Next())
			})
		})
	})
}

func (c Iterator[V]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Iterator[V]) Benchmark(b *testing.B) {
	c.Spec(testcase.NewSpec(b))
}
