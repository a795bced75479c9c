package collections

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-typed-collections/arr"
)

// Unexported fields take part in equality; collections compare values, not
// just their public surface.
var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are equal by value.
//
// Values are compared deeply: pointers by what they point to, structs field
// by field including unexported fields, and types with an Equal method
// (such as time.Time) through that method. Values of different dynamic
// types are never equal.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, equalOpts...)
}

func equality[T any]() arr.Equality[T] {
	return arr.Equality[T]{Equal: Equal[T], Key: scalarKey[T]}
}

// scalarKey lets set operations hash values of predeclared scalar types,
// for which == and Equal agree.
func scalarKey[T any](item T) (any, bool) {
	v := any(item)
	if v == nil {
		return nil, true
	}
	rt := reflect.TypeOf(v)
	if rt.PkgPath() != "" || rt.Name() == "" {
		return nil, false
	}
	switch rt.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return v, true
	}
	return nil, false
}
