package iterators

// Find returns the first value of the iterator for which the "by" function returns true.
// Find consumes the iterator up to and including the match,
// so calling Find again with the same iterator resumes the search right after the previously found value.
// When no value matches, the iterator is fully consumed and the returned bool is false.
func Find[T any](i Iterator[T], by func(T) bool) (T, bool) {
	for i.Next() {
		if v := i.Value(); by(v) {
			return v, true
		}
	}
	var v T
	return v, false
}
