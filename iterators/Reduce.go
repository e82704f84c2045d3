package iterators

// Reduce iterates over the remaining values, combining them with the "blk" reducer function,
// starting from the initial value.
// Reducing an already exhausted iterator returns the initial value unchanged.
func Reduce[R, T any](i Iterator[T], initial R, blk func(R, T) R) R {
	var v = initial
	for i.Next() {
		v = blk(v, i.Value())
	}
	return v
}
