package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Collection operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := c.Push(v); errors.Is(err, collections.ErrInvalidElement) {
//	    // v has the wrong type
//	}
var (
	// ErrInvalidElement is returned when an element's dynamic type does not
	// exactly match the collection's declared element type. The concrete
	// error is an [*InvalidElementError].
	ErrInvalidElement = errors.New("collections: invalid element type")

	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the collection is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index resolves outside
	// [0, Count()), or when a requested size exceeds what a collection may
	// grow to.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrAbstractElementType is returned when a constructor is given an
	// interface-typed descriptor, which no element could ever match.
	ErrAbstractElementType = errors.New("collections: element type must be a concrete type")

	// ErrIncompatibleElementType is returned when a descriptor names a type
	// the collection's Go element type cannot hold, such as String for a
	// Collection[int].
	ErrIncompatibleElementType = errors.New("collections: element type incompatible with collection")

	// ErrUnknownType is returned by [LookupType] for unregistered names.
	ErrUnknownType = errors.New("collections: unknown element type")
)

// InvalidElementError reports the first non-conforming value of a validated
// input. Index is the value's position within that input.
type InvalidElementError struct {
	Index int
	Got   string
	Want  string
}

func (e *InvalidElementError) Error() string {
	return fmt.Sprintf("collections: invalid type at index %d: got %s expected %s", e.Index, e.Got, e.Want)
}

// Unwrap makes errors.Is(err, ErrInvalidElement) hold.
func (e *InvalidElementError) Unwrap() error { return ErrInvalidElement }
