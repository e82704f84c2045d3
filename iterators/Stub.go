package iterators

// Stub wraps an iterator so its behavior can be overridden on a per method basis from tests.
func Stub[T any](i Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubValue: i.Value,
		StubNext:  i.Next,
	}
}

type StubIter[T any] struct {
	Iterator  Iterator[T]
	StubValue func() T
	StubNext  func() bool
}

// wrapper

func (m *StubIter[T]) Next() bool {
	return m.StubNext()
}

func (m *StubIter[T]) Value() T {
	return m.StubValue()
}

// Reseting stubs

func (m *StubIter[T]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

func (m *StubIter[T]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
