// Package get defines the accessor contract implemented by litgen marker types.
//
// A marker type is a zero-sized struct that conveys a single value through
// its type. Generated code asserts the contract at compile time:
//
//	type fortyTwo struct{}
//
//	var _ get.Getter[uint16] = fortyTwo{}
//
//	func (fortyTwo) Get() uint16 {
//		return 42
//	}
//
// Implementations must be side-effect free and must return the same value
// on every call, so callers may evaluate them in any order and memoize the
// result.
package get

// ImportPath is the import path generated code uses to reference Getter.
const ImportPath = "litgen/get"

// Getter conveys a value of type T through the type that implements it.
type Getter[T any] interface {
	Get() T
}

// Of returns the value conveyed by the marker type G without requiring an
// instance of it.
func Of[T any, G Getter[T]]() T {
	var g G

	return g.Get()
}
