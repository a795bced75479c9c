package arr

import (
	"math"
	"math/rand"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Bounds
// ─────────────────────────────────────────────────────────────────────────────

// Index resolves index against a sequence of length total.
// A negative index counts from the end (-1 is the last element).
// Reports false when the resolved position falls outside [0, total).
func Index(total, index int) (int, bool) {
	if index < 0 {
		index += total
	}
	if index < 0 || index >= total {
		return 0, false
	}
	return index, true
}

// Window resolves an (offset, length) pair against a sequence of length total
// and returns the half-open range [start, end) it selects.
//
// The rules follow PHP's array_slice / array_splice:
//   - a negative offset counts from the end and is clamped to 0;
//   - an offset past the end resolves to total (an empty window);
//   - an omitted length runs to the end;
//   - a negative length stops that many elements before the end;
//   - a window that would be inverted is empty.
func Window(total, offset int, length ...int) (start, end int) {
	start = offset
	if start < 0 {
		start += total
		if start < 0 {
			start = 0
		}
	}
	if start > total {
		start = total
	}

	end = total
	if len(length) > 0 {
		switch n := length[0]; {
		case n < 0:
			end = total + n
		case n < total-start:
			end = start + n
		}
	}
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}
	return start, end
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// IndexFunc returns the index of the first element satisfying fn, or -1.
func IndexFunc[T any](items []T, fn func(T) bool) int {
	for i, item := range items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Clone returns a copy of items. The result is never nil.
func Clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Reduce reduces items to a single value of type U.
func Reduce[T, U any](items []T, fn func(U, T, int) U, initial U) U {
	result := initial
	for i, item := range items {
		result = fn(result, item, i)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of the window selected by offset and the optional
// length. See [Window] for the offset and length rules.
//
//	Slice([]string{"A", "B", "C", "D"}, 2)      // → [C D]
//	Slice([]string{"A", "B", "C", "D"}, -3, 2)  // → [B C]
func Slice[T any](items []T, offset int, length ...int) []T {
	start, end := Window(len(items), offset, length...)
	return Clone(items[start:end])
}

// Splice removes the window selected by offset and deleteCount and inserts
// replacement in its place. items is not modified; the spliced sequence and
// the removed elements are returned as fresh slices.
//
// deleteCount follows the length rules of [Window]; an offset past the end
// inserts at the end.
//
//	out, removed := Splice([]string{"A", "B", "C", "D"}, 1, 2, "E", "F")
//	// out → [A E F D], removed → [B C]
func Splice[T any](items []T, offset, deleteCount int, replacement ...T) (out, removed []T) {
	start, end := Window(len(items), offset, deleteCount)
	removed = Clone(items[start:end])
	out = make([]T, 0, len(items)-len(removed)+len(replacement))
	out = append(out, items[:start]...)
	out = append(out, replacement...)
	out = append(out, items[end:]...)
	return out, removed
}

// Pad returns a copy of items grown to |size| elements with copies of value.
// A positive size pads at the end, a negative size at the front. When |size|
// does not exceed len(items) the copy is returned unchanged. Like make, Pad
// panics when the padded length cannot be allocated.
//
//	Pad([]string{"A", "B"}, 4, "C")   // → [A B C C]
//	Pad([]string{"A", "B"}, -4, "C")  // → [C C A B]
func Pad[T any](items []T, size int, value T) []T {
	n := PadLen(size)
	if n <= len(items) {
		return Clone(items)
	}
	fill := make([]T, n-len(items))
	for i := range fill {
		fill[i] = value
	}
	if size > 0 {
		return append(Clone(items), fill...)
	}
	return append(fill, items...)
}

// PadLen returns the target length |size| of a [Pad]. math.MinInt, whose
// negation overflows, saturates to math.MaxInt.
func PadLen(size int) int {
	switch {
	case size == math.MinInt:
		return math.MaxInt
	case size < 0:
		return -size
	}
	return size
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Prepend prepends values to the front of items.
func Prepend[T any](items []T, values ...T) []T {
	out := make([]T, len(values)+len(items))
	copy(out, values)
	copy(out[len(values):], items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// SortStable returns a sorted copy of items. compare follows the usual
// negative / zero / positive convention and equal elements keep their
// original order.
func SortStable[T any](items []T, compare func(a, b T) int) []T {
	out := Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return compare(out[i], out[j]) < 0 })
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := Clone(items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
