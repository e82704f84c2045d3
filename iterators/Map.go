package iterators

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// The transform function receives the upstream value and its result becomes the iterated value,
// thus the downstream never learns what steps were needed to produce it.
func Map[To any, From any](iter Iterator[From], transform func(From) To) Iterator[To] {
	return &mapIter[From, To]{
		Iterator:  iter,
		Transform: transform,
	}
}

type mapIter[From any, To any] struct {
	Iterator  Iterator[From]
	Transform func(From) To

	value To
}

func (i *mapIter[From, To]) Next() bool {
	if !i.Iterator.Next() {
		return false
	}
	i.value = i.Transform(i.Iterator.Value())
	return true
}

func (i *mapIter[From, To]) Value() To {
	return i.value
}
