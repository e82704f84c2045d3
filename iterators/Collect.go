package iterators

// Collect drains the iterator into a slice.
// Collecting an exhausted iterator yields an empty, non nil slice.
func Collect[T any](i Iterator[T]) []T {
	vs := make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs
}
