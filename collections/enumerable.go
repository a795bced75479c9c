package collections

// Typer reports the element type a collection was declared with. Code that
// handles collections of different Go types can use it to compare or report
// declared types without knowing T.
type Typer interface {
	ElementType() ElementType
}

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// collection without granting access to its mutating methods.
type Enumerable[T any] interface {
	Typer

	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Get returns the item at index; negative indices count from the end.
	Get(index int) (T, error)

	// Has reports whether an item equal to value is present.
	Has(value T) bool

	// Search returns the index of the first item equal to value, or NotFound.
	Search(value T) int

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// ForEach calls fn(item, index) for every item.
	ForEach(fn func(T, int))

	// ToSlice is an alias for All.
	ToSlice() []T
}

var (
	_ Typer              = (*Collection[any])(nil)
	_ Enumerable[string] = (*Collection[string])(nil)
)
