package iterators

// Filter keeps only those values of the iterator for which the filter function returns true.
// The relative order of the values that pass through is kept.
func Filter[T any](i Iterator[T], filter func(T) bool) Iterator[T] {
	return &filterIter[T]{Iterator: i, Filter: filter}
}

type filterIter[T any] struct {
	Iterator Iterator[T]
	Filter   func(T) bool

	value T
}

func (i *filterIter[T]) Value() T {
	return i.value
}

func (i *filterIter[T]) Next() bool {
	for i.Iterator.Next() {
		i.value = i.Iterator.Value()
		if i.Filter(i.value) {
			return true
		}
	}
	return false
}
