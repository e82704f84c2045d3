package iterators

// Func enables you to create an iterator with a lambda expression.
// The next function reports the upcoming value and whether iteration may continue.
// Once it reported false, the returned iterator stays exhausted.
func Func[T any](next func() (v T, ok bool)) Iterator[T] {
	return &funcIter[T]{NextFn: next}
}

type funcIter[T any] struct {
	NextFn func() (v T, ok bool)

	value T
	done  bool
}

func (i *funcIter[T]) Next() bool {
	if i.done {
		return false
	}
	value, ok := i.NextFn()
	if !ok {
		i.done = true
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[T]) Value() T {
	return i.value
}
