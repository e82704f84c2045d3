// Package datastruct provide generic container types.
package datastruct

import "go.llib.dev/sequence/iterators"

// List is the common interface of ordered value containers.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iterators.Iterator[T]
	Sizer
}

type Sizer interface {
	Len() int
}
