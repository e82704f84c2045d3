package iterators

// Last consumes the iterator and returns its final value.
// The returned bool reports whether the iterator had a value at all.
func Last[T any](i Iterator[T]) (T, bool) {
	var (
		v        T
		iterated bool
	)
	for i.Next() {
		iterated = true
		v = i.Value()
	}
	return v, iterated
}
