package datastruct

import (
	"go.llib.dev/sequence/iterators"
	"go.llib.dev/sequence/pkg/slicekit"
)

// MakeSequence creates a Sequence from the received values.
func MakeSequence[T any](vs ...T) Sequence[T] {
	var s Sequence[T]
	s.Append(vs...)
	return s
}

// Sequence is a contiguous, growable value container.
// Values keep their insertion order.
// The zero value of Sequence is an empty, ready to use container.
//
// A Sequence must not be modified while an iterator made from it is in use.
type Sequence[T any] struct {
	vs []T
}

// Append adds the received values to the end of the sequence.
func (s *Sequence[T]) Append(vs ...T) {
	s.vs = append(s.vs, vs...)
}

// Len returns the number of values the sequence holds.
func (s *Sequence[T]) Len() int {
	return len(s.vs)
}

// ToSlice returns a copy of the sequence's values.
func (s *Sequence[T]) ToSlice() []T {
	return slicekit.Clone(s.vs)
}

// Lookup returns the value found at the index position.
func (s *Sequence[T]) Lookup(index int) (T, bool) {
	if !s.isValidIndex(index) {
		var v T
		return v, false
	}
	return s.vs[index], true
}

// Set replaces the value at the index position.
func (s *Sequence[T]) Set(index int, val T) bool {
	if !s.isValidIndex(index) {
		return false
	}
	s.vs[index] = val
	return true
}

// Insert places the given values at the index position, shifting the rest to the right.
// Inserting at the Len() position appends.
func (s *Sequence[T]) Insert(index int, vs ...T) bool {
	if !(0 <= index && index <= len(s.vs)) {
		return false
	}
	slicekit.Insert(&s.vs, index, vs...)
	return true
}

// Delete removes the value found at the index position.
func (s *Sequence[T]) Delete(index int) bool {
	if !s.isValidIndex(index) {
		return false
	}
	slicekit.Delete(&s.vs, index)
	return true
}

func (s *Sequence[T]) isValidIndex(index int) bool {
	return 0 <= index && index < len(s.vs)
}

// Iter returns a read-only iterator that yields the values of the sequence in insertion order.
// The iterator walks the value window taken at its creation,
// so values appended afterwards are not part of the iteration.
func (s *Sequence[T]) Iter() iterators.Iterator[T] {
	return iterators.Slice(s.vs)
}

// IterMut returns an iterator that yields a pointer to each value of the sequence,
// in insertion order, for in-place editing.
// The sequence must not be accessed in any other way until the iteration is over.
func (s *Sequence[T]) IterMut() iterators.Iterator[*T] {
	return &mutIter[T]{rest: s.vs}
}

// mutIter hands out element pointers by splitting the head off its remaining window.
// No two yielded pointers can refer to the same element,
// and the iteration cannot move past the window captured at creation.
type mutIter[T any] struct {
	rest []T
	cur  *T
}

func (i *mutIter[T]) Next() bool {
	if len(i.rest) == 0 {
		i.cur = nil
		return false
	}
	i.cur = &i.rest[0]
	i.rest = i.rest[1:]
	return true
}

func (i *mutIter[T]) Value() *T {
	return i.cur
}
