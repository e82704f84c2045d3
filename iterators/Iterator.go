/*
Package iterators provide iterator implementations.

# Summary

An Iterator's goal is to decouple the origin of the data from the consumer who uses that data.
Most commonly, iterators hide whether the data comes from a specific container, a generator function, or elsewhere.
This approach helps to design data consumers that are not dependent on the concrete implementation of the data source,
while still allowing for the composition and various actions on the received data stream.
An Iterator represents an iterable list of element,
which length is not known until it is fully iterated, thus can range from zero to infinity.

# Resources

https://en.wikipedia.org/wiki/Iterator_pattern
*/
package iterators

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// Running out of values is not an error but the natural terminal state of an iterator,
// so the interface has no error reporting.
// Implementations in this package keep returning false from Next once they are exhausted.
type Iterator[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next returns false.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
