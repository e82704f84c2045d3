package iterators

import "go.llib.dev/sequence/pkg/errorkit"

// Break can be returned from the ForEach block to stop the iteration early without an error.
const Break errorkit.Error = `iterators:break`

// ForEach executes the received block on each value of the iterator.
// Returning an error from the block stops the iteration and ForEach returns that error,
// except for Break, which stops the iteration silently.
func ForEach[T any](i Iterator[T], fn func(T) error) error {
	for i.Next() {
		err := fn(i.Value())
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}
