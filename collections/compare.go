package collections

import (
	"fmt"
	"reflect"
	"time"

	"github.com/emirpasic/gods/utils"
)

// Compare is the natural ordering used by [Collection.Sort] when no
// comparator is supplied. It returns a negative number when a sorts before
// b, zero when they are equivalent and a positive number otherwise.
//
//   - strings, integers, unsigned integers and floats (including named types
//     with those underlying kinds) compare by value;
//   - bools order false before true;
//   - time.Time values order chronologically;
//   - nil sorts before everything else;
//   - values of different dynamic types order by type name;
//   - anything else orders by its %v rendering.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		if c := utils.StringComparator(ta.String(), tb.String()); c != 0 {
			return c
		}
		return utils.StringComparator(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}

	if ta == reflect.TypeOf((*time.Time)(nil)).Elem() {
		return utils.TimeComparator(a, b)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.String:
		return utils.StringComparator(va.String(), vb.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return utils.Int64Comparator(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return utils.UInt64Comparator(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return utils.Float64Comparator(va.Float(), vb.Float())
	case reflect.Bool:
		return compareBool(va.Bool(), vb.Bool())
	}
	return utils.StringComparator(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func natural[T any](a, b T) int { return Compare(a, b) }
