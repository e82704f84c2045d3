// Package slicekit contains small slice manipulation helpers.
package slicekit

// Clone creates a copy of the received slice.
func Clone[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// Insert places the given values at the index position of the slice, shifting the rest to the right.
// Inserting at the length position is an append.
func Insert[T any](s *[]T, index int, vs ...T) {
	var out []T
	out = append(out, (*s)[:index]...)
	out = append(out, vs...)
	out = append(out, (*s)[index:]...)
	*s = out
}

// Delete removes the element found at the index position of the slice.
func Delete[T any](s *[]T, index int) {
	*s = append((*s)[:index], (*s)[index+1:]...)
}
