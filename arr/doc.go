// Package arr provides the slice arithmetic behind typed collections:
// PHP-style offset and length resolution, slicing, splicing, padding and
// equality-driven set operations on plain []T values, plus dot-notation
// lookup inside decoded YAML/JSON documents.
//
// # Offsets
//
// All offset-taking helpers share the rules of [Window], which mirror
// PHP's array_slice and array_splice:
//
//	arr.Slice([]string{"A", "B", "C", "D"}, -3, 2)          // → [B C]
//	out, removed := arr.Splice(items, 1, 2, "E", "F")       // out → [A E F D]
//	arr.Pad([]string{"A", "B"}, -4, "C")                    // → [C C A B]
//
// # Set operations
//
// [Unique], [Diff] and [Intersect] compare elements through an [Equality],
// so element types do not need to be comparable:
//
//	eq := arr.Equality[[]int]{Equal: slices.Equal[[]int]}
//	arr.Unique([][]int{{1}, {2}, {1}}, eq) // → [[1] [2]]
//
// # Dot-notation lookup
//
//	arr.Get(doc, "data.items.0")
//	arr.Has(doc, "data.items")
package arr
