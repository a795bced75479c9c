package collections

// Leaf variants: mixed-value collections pinned to one built-in element type.
// Their items are held as any, so a non-conforming value is rejected at run
// time rather than by the compiler.

// Strings creates a *Collection[any] that only accepts string elements.
func Strings(items ...any) (*Collection[any], error) { return New(String, items...) }

// Ints creates a *Collection[any] that only accepts int elements.
func Ints(items ...any) (*Collection[any], error) { return New(Int, items...) }

// Float64s creates a *Collection[any] that only accepts float64 elements.
func Float64s(items ...any) (*Collection[any], error) { return New(Float64, items...) }

// Bools creates a *Collection[any] that only accepts bool elements.
func Bools(items ...any) (*Collection[any], error) { return New(Bool, items...) }
