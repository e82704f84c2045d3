// Package errorkit helps with the constant error idiom.
package errorkit

// Error is a string based type that allows you to declare error constants for your packages.
//
//	const ErrSomething errorkit.Error = "something is an error"
type Error string

// Error implement the error interface, so the Error string type can be used as an error value.
func (err Error) Error() string { return string(err) }
