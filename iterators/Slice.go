package iterators

// Slice returns an iterator that yields the values of the given slice in order.
// The iterator walks the slice header taken at creation time,
// so appending to the origin slice afterwards doesn't affect the iteration.
func Slice[T any](slice []T) Iterator[T] {
	return &sliceIter[T]{Slice: slice}
}

type sliceIter[T any] struct {
	Slice []T

	index int
	value T
}

func (i *sliceIter[T]) Next() bool {
	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}
