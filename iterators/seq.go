package iterators

import "iter"

// ToSeq adapts the iterator into the standard library iter.Seq form,
// so it can be used directly in a range-over-func loop.
func ToSeq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i.Next() {
			if !yield(i.Value()) {
				return
			}
		}
	}
}

// FromSeq adapts an iter.Seq into a pull style Iterator.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return &seqIter[T]{next: next, stop: stop}
}

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()

	value T
	done  bool
}

func (i *seqIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, ok := i.next()
	if !ok {
		i.done = true
		i.stop()
		return false
	}
	i.value = v
	return true
}

func (i *seqIter[T]) Value() T {
	return i.value
}
