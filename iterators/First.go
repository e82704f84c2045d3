package iterators

// First returns the first next value of the iterator.
// The returned bool reports whether the iterator had a value at all.
func First[T any](i Iterator[T]) (T, bool) {
	if !i.Next() {
		var v T
		return v, false
	}
	return i.Value(), true
}
