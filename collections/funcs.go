package collections

import "github.com/hasbyte1/go-typed-collections/arr"

// This file contains package-level generic functions for operations that
// transform a Collection[T] into a Collection[U] or a single value.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. The caller names the
// result's element type explicitly:
//
//	lengths, err := collections.Map(words, collections.Int,
//	    func(s string, _ int) int { return len(s) })

// Map applies fn to every item and returns a new Collection[U] declared as
// elem. Results are validated against elem like constructor input.
//
//	doubled, err := collections.Map(collections.Of(1, 2, 3), collections.Int,
//	    func(n, _ int) int { return n * 2 })
func Map[T, U any](c *Collection[T], elem ElementType, fn func(T, int) U) (*Collection[U], error) {
	return From(elem, arr.Map(c.items, fn))
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.Of(1, 2, 3, 4),
//	    func(acc int, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, int) U, initial U) U {
	return arr.Reduce(c.items, fn, initial)
}
