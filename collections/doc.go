// Package collections provides a generic, typed Collection: an ordered
// sequence whose elements must all have one declared element type.
//
// # Overview
//
// The central type is [Collection][T]. Its element type is an [ElementType]
// fixed at construction; every value that enters the collection (through a
// constructor, Push, Unshift, Splice, Pad, ReplaceAll, Each or decoding) is
// checked against it with an exact type match, and the first mismatch is
// reported as an [*InvalidElementError]:
//
//	letters, _ := collections.Strings("A", "B", "C", "D")
//
//	letters.Diff(collections.Mixed("A", "C"))  // → [B D]
//	letters.Slice(-3, 2)                       // → [B C]
//	letters.Push(1)                            // → ErrInvalidElement
//
// # Derivation and mutation
//
// Filter, Reject, Diff, Intersect, Unique, Slice, Reverse, Pad, Sort,
// Shuffle, Each and Clone return a *new* collection with the same element
// type. Push, Pop, Shift, Unshift, Splice and ReplaceAll change the receiver
// in place, and leave it untouched when validation fails.
//
// # Equality and ordering
//
// Has, Search, Diff, Intersect and Unique compare elements by value with
// [Equal]. Sort without a comparator uses the natural ordering of [Compare].
//
// # Type-changing operations
//
// Go generics do not allow methods to introduce new type parameters, so
// [Map] is a package-level function taking the result's element type:
//
//	lengths, err := collections.Map(words, collections.Int,
//	    func(s string, _ int) int { return len(s) })
//
// # Named element types
//
// [RegisterType] and [LookupType] map names such as "string", "integer" or
// "double" to descriptors, for callers that read the element type from
// configuration.
//
// # Concurrency
//
// A Collection is not safe for concurrent use. The type registry is.
package collections
