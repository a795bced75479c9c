package collections

import (
	"fmt"
	"reflect"
)

// ElementType describes the nominal type every element of a collection must
// have. The zero value is [Untyped]: a mixed collection that accepts any
// element.
//
// Conformance is an exact match of the element's dynamic type against the
// descriptor, never an interface-satisfaction check: a value of a named type
// `type Name string` does not conform to [String], and a *User does not
// conform to TypeOf[User](). A nil interface value conforms only to
// [Untyped].
type ElementType struct {
	rt reflect.Type
}

// Untyped is the descriptor of a mixed collection.
var Untyped ElementType

// Built-in descriptors.
var (
	String  = TypeOf[string]()
	Int     = TypeOf[int]()
	Int64   = TypeOf[int64]()
	Float64 = TypeOf[float64]()
	Bool    = TypeOf[bool]()
)

// TypeOf returns the descriptor for E.
//
//	collections.TypeOf[time.Time]()
//	collections.TypeOf[*User]()
func TypeOf[E any]() ElementType {
	return ElementType{rt: reflect.TypeOf((*E)(nil)).Elem()}
}

// TypeOfValue returns the descriptor matching the dynamic type of v, or
// [Untyped] when v is nil.
func TypeOfValue(v any) ElementType {
	if v == nil {
		return Untyped
	}
	return ElementType{rt: reflect.TypeOf(v)}
}

// Name returns the Go type string of the descriptor ("string", "int",
// "*pkg.User"), or "mixed" for [Untyped].
func (t ElementType) Name() string {
	if t.rt == nil {
		return "mixed"
	}
	return t.rt.String()
}

// String implements [fmt.Stringer].
func (t ElementType) String() string { return t.Name() }

// IsUntyped reports whether t accepts every element.
func (t ElementType) IsUntyped() bool { return t.rt == nil }

// Type returns the underlying [reflect.Type], or nil for [Untyped].
func (t ElementType) Type() reflect.Type { return t.rt }

// Accepts reports whether v conforms to t.
func (t ElementType) Accepts(v any) bool {
	if t.rt == nil {
		return true
	}
	return v != nil && reflect.TypeOf(v) == t.rt
}

// abstract reports whether t names an interface type, which no dynamic type
// can ever match exactly.
func (t ElementType) abstract() bool {
	return t.rt != nil && t.rt.Kind() == reflect.Interface
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return TypeOfValue(v).Name()
}

// compatible reports whether a Collection[T] can hold values of elem.
func compatible[T any](elem ElementType) error {
	if elem.IsUntyped() {
		return nil
	}
	st := reflect.TypeOf((*T)(nil)).Elem()
	if st.Kind() == reflect.Interface && elem.rt.Implements(st) || st == elem.rt {
		return nil
	}
	return fmt.Errorf("%w: %s cannot hold %s", ErrIncompatibleElementType, st, elem.Name())
}

// validate checks items against elem and returns the first mismatch.
// Collections whose static element type already is elem skip the scan.
func validate[T any](elem ElementType, items []T) error {
	if elem.IsUntyped() {
		return nil
	}
	if st := reflect.TypeOf((*T)(nil)).Elem(); st.Kind() != reflect.Interface && st == elem.rt {
		return nil
	}
	for i, item := range items {
		if v := any(item); !elem.Accepts(v) {
			return &InvalidElementError{Index: i, Got: typeName(v), Want: elem.Name()}
		}
	}
	return nil
}
