package collections

import (
	"fmt"

	"github.com/hasbyte1/go-typed-collections/arr"
)

const (
	// NotFound is the index returned by [Collection.Search] for absent values.
	NotFound = -1

	// MaxPadSize is the largest length [Collection.Pad] grows a collection to.
	MaxPadSize = 1 << 24
)

// Collection is an ordered sequence of elements that all conform to a
// declared [ElementType].
//
// Derivation methods (Filter, Diff, Slice, Sort, …) return a *new*
// Collection with the same element type and leave the receiver unchanged.
// Mutating methods (Push, Pop, Shift, Unshift, Splice, ReplaceAll) change the
// receiver in place. Every value entering the collection is validated first;
// on failure the collection is left exactly as it was.
//
// A Collection is not safe for concurrent use. Callers sharing one across
// goroutines must synchronise access themselves.
//
// # Creating a collection
//
//	c, err := collections.New(collections.String, "A", "B", "C")
//	c := collections.Of(1, 2, 3)                  // declared as int
//	c := collections.Mixed("A", 1, true)          // untyped
//	c, err := collections.Strings("A", "B")       // *Collection[any] holding strings only
//
// # Element types
//
// The element type is fixed at construction. For a concrete T the compiler
// already enforces it; for T = any (or another interface) the declared
// [ElementType] is checked at run time with an exact type match:
//
//	c, _ := collections.Strings("A", "B")
//	err := c.Push(1) // errors.Is(err, collections.ErrInvalidElement)
//
// The zero value is an empty, untyped collection ready to use.
type Collection[T any] struct {
	items []T
	elem  ElementType
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection declared as elem holding items (copied).
// It fails with an [*InvalidElementError] on the first item whose dynamic
// type is not exactly elem, with [ErrAbstractElementType] if elem is an
// interface type and with [ErrIncompatibleElementType] if T can never hold an
// elem value.
func New[T any](elem ElementType, items ...T) (*Collection[T], error) {
	return From(elem, items)
}

// From is the slice form of [New]. The slice is copied.
func From[T any](elem ElementType, items []T) (*Collection[T], error) {
	if elem.abstract() {
		return nil, fmt.Errorf("%w: %s", ErrAbstractElementType, elem.Name())
	}
	if err := compatible[T](elem); err != nil {
		return nil, err
	}
	if err := validate(elem, items); err != nil {
		return nil, err
	}
	return &Collection[T]{items: arr.Clone(items), elem: elem}, nil
}

// Of creates a Collection declared as T itself. When T is an interface type
// the collection is untyped.
func Of[T any](items ...T) *Collection[T] {
	elem := TypeOf[T]()
	if elem.abstract() {
		elem = Untyped
	}
	return &Collection[T]{items: arr.Clone(items), elem: elem}
}

// Mixed creates an untyped collection.
func Mixed(items ...any) *Collection[any] {
	return &Collection[any]{items: arr.Clone(items)}
}

// Empty creates an empty Collection declared as elem.
// An interface-typed elem yields an untyped collection; an elem that T can
// never hold fails with [ErrIncompatibleElementType].
func Empty[T any](elem ElementType) (*Collection[T], error) {
	if elem.abstract() {
		elem = Untyped
	}
	if err := compatible[T](elem); err != nil {
		return nil, err
	}
	return &Collection[T]{items: []T{}, elem: elem}, nil
}

// derive wraps items (already owned) in a collection sharing c's element type.
func (c *Collection[T]) derive(items []T) *Collection[T] {
	return &Collection[T]{items: items, elem: c.elem}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ElementType returns the declared element type.
func (c *Collection[T]) ElementType() ElementType { return c.elem }

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T { return arr.Clone(c.items) }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index. A negative index counts from the end.
// Returns [ErrIndexOutOfRange] when the resolved index is outside
// [0, Count()).
func (c *Collection[T]) Get(index int) (T, error) {
	i, ok := arr.Index(len(c.items), index)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	return c.items[i], nil
}

// Has reports whether an item equal to value is present.
// Equality is by value; see [Equal].
func (c *Collection[T]) Has(value T) bool { return c.Search(value) != NotFound }

// Search returns the index of the first item equal to value, or [NotFound].
func (c *Collection[T]) Search(value T) int {
	return arr.IndexFunc(c.items, func(item T) bool { return Equal(item, value) })
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		if i := arr.IndexFunc(c.items, fns[0]); i != NotFound {
			return c.items[i], true
		}
		return zero, false
	}
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last item, optionally matching fns[0].
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	for i := len(c.items) - 1; i >= 0; i-- {
		if len(fns) == 0 || fns[0](c.items[i]) {
			return c.items[i], true
		}
	}
	return zero, false
}

// ForEach calls fn(item, index) for every item.
func (c *Collection[T]) ForEach(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Derivation
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a copy of the collection. Elements are copied shallowly.
func (c *Collection[T]) Clone() *Collection[T] { return c.derive(arr.Clone(c.items)) }

// Filter returns a new collection with only the items for which fn(item, index)
// returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return c.derive(arr.Filter(c.items, fn))
}

// Reject returns a new collection with items for which fn returns true removed.
// It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return c.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Each applies fn to every item and returns the results as a new collection
// declared with the receiver's element type. Results are validated like
// constructor input, so a string collection still demands string results.
//
// To produce a collection of another type, use the package-level [Map].
func (c *Collection[T]) Each(fn func(T, int) T) (*Collection[T], error) {
	return From(c.elem, arr.Map(c.items, fn))
}

// Diff returns the items of c that are not equal to any item of others.
// Order and duplicates of c are preserved.
//
//	[A B C D].Diff([A C])      → [B D]
//	[A B C D].Diff([A C], [D]) → [B]
func (c *Collection[T]) Diff(others ...*Collection[T]) *Collection[T] {
	return c.derive(arr.Diff(c.items, equality[T](), itemsOf(others)...))
}

// Intersect returns the items of c that are equal to an item in every one of
// others. With no others, a copy of c is returned.
//
//	[A B C D].Intersect([A C])      → [A C]
//	[A B C D].Intersect([A C], [A]) → [A]
func (c *Collection[T]) Intersect(others ...*Collection[T]) *Collection[T] {
	return c.derive(arr.Intersect(c.items, equality[T](), itemsOf(others)...))
}

// Unique returns a new collection keeping only the first occurrence of each
// value.
func (c *Collection[T]) Unique() *Collection[T] {
	return c.derive(arr.Unique(c.items, equality[T]()))
}

// Slice returns the items starting at offset, with at most length[0] items.
//
// A negative offset counts from the end. An omitted length runs to the end;
// a negative length stops that many items before the end. Out-of-range
// windows are clamped, never an error.
//
//	[A B C D].Slice(2)     → [C D]
//	[A B C D].Slice(-3, 2) → [B C]
func (c *Collection[T]) Slice(offset int, length ...int) *Collection[T] {
	return c.derive(arr.Slice(c.items, offset, length...))
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] { return c.derive(arr.Reverse(c.items)) }

// Pad returns a copy grown to |size| items with copies of value: appended
// when size is positive, prepended when negative. When |size| <= Count() the
// copy is unchanged. value must conform to the element type, and |size| may
// not exceed [MaxPadSize] ([ErrIndexOutOfRange]).
func (c *Collection[T]) Pad(size int, value T) (*Collection[T], error) {
	if err := validate(c.elem, []T{value}); err != nil {
		return nil, err
	}
	if n := arr.PadLen(size); n > MaxPadSize {
		return nil, fmt.Errorf("%w: pad size %d exceeds %d", ErrIndexOutOfRange, size, MaxPadSize)
	}
	return c.derive(arr.Pad(c.items, size, value)), nil
}

// Sort returns a new, stably sorted collection.
// cmps[0], when given, returns a negative number when a sorts before b, zero
// when they are equivalent and a positive number otherwise. Without it the
// natural ordering of [Compare] is used.
func (c *Collection[T]) Sort(cmps ...func(a, b T) int) *Collection[T] {
	compare := natural[T]
	if len(cmps) > 0 && cmps[0] != nil {
		compare = cmps[0]
	}
	return c.derive(arr.SortStable(c.items, compare))
}

// Shuffle returns a new collection with items in a random order.
func (c *Collection[T]) Shuffle() *Collection[T] { return c.derive(arr.Shuffle(c.items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// ReplaceAll replaces the contents of c with items. Nothing changes if any
// item fails validation.
func (c *Collection[T]) ReplaceAll(items ...T) error {
	if err := validate(c.elem, items); err != nil {
		return err
	}
	c.items = arr.Clone(items)
	return nil
}

// Push appends values to the end of c. Nothing is appended if any value
// fails validation.
func (c *Collection[T]) Push(values ...T) error {
	if err := validate(c.elem, values); err != nil {
		return err
	}
	c.items = append(c.items, values...)
	return nil
}

// Unshift prepends values to the front of c, keeping their argument order.
// Nothing is prepended if any value fails validation.
func (c *Collection[T]) Unshift(values ...T) error {
	if err := validate(c.elem, values); err != nil {
		return err
	}
	c.items = arr.Prepend(c.items, values...)
	return nil
}

// Pop removes and returns the last item.
// Returns [ErrEmptyCollection] if the collection is empty.
func (c *Collection[T]) Pop() (T, error) {
	var zero T
	n := len(c.items)
	if n == 0 {
		return zero, ErrEmptyCollection
	}
	item := c.items[n-1]
	c.items[n-1] = zero
	c.items = c.items[:n-1]
	return item, nil
}

// Shift removes and returns the first item; the remaining items move down
// one index. Returns [ErrEmptyCollection] if the collection is empty.
func (c *Collection[T]) Shift() (T, error) {
	var zero T
	if len(c.items) == 0 {
		return zero, ErrEmptyCollection
	}
	item := c.items[0]
	c.items[0] = zero
	c.items = c.items[1:]
	return item, nil
}

// Splice removes deleteCount items starting at offset and inserts
// replacement in their place. offset and deleteCount follow the rules of
// [Collection.Slice]; an offset past the end inserts at the end.
//
// The replacement is validated before anything changes. The removed items
// are returned as a new collection with the same element type.
//
//	c: [A B C D]
//	removed, _ := c.Splice(1, 2, "E", "F")
//	c: [A E F D], removed: [B C]
func (c *Collection[T]) Splice(offset, deleteCount int, replacement ...T) (*Collection[T], error) {
	if err := validate(c.elem, replacement); err != nil {
		return nil, err
	}
	out, removed := arr.Splice(c.items, offset, deleteCount, replacement...)
	c.items = out
	return c.derive(removed), nil
}

func itemsOf[T any](cs []*Collection[T]) [][]T {
	out := make([][]T, 0, len(cs))
	for _, other := range cs {
		if other != nil {
			out = append(out, other.items)
		}
	}
	return out
}
