package arr

// Equality describes how elements are compared by the set helpers.
//
// Equal is mandatory. Key is optional: when it reports true for a value, the
// returned key is used for hash lookups instead of a linear scan. Key must
// only accept values for which key equality and Equal agree.
type Equality[T any] struct {
	Equal func(a, b T) bool
	Key   func(T) (any, bool)
}

// Set is an equality-based membership index over values of type T.
type Set[T any] struct {
	eq     Equality[T]
	hashed map[any]struct{}
	rest   []T
}

// NewSet creates a Set holding items.
func NewSet[T any](eq Equality[T], items ...T) *Set[T] {
	s := &Set[T]{eq: eq, hashed: make(map[any]struct{})}
	s.Add(items...)
	return s
}

// Add inserts items into the set.
func (s *Set[T]) Add(items ...T) {
	for _, item := range items {
		if s.Contains(item) {
			continue
		}
		if k, ok := s.key(item); ok {
			s.hashed[k] = struct{}{}
			continue
		}
		s.rest = append(s.rest, item)
	}
}

// Contains reports whether an element equal to item is in the set.
func (s *Set[T]) Contains(item T) bool {
	if k, ok := s.key(item); ok {
		_, found := s.hashed[k]
		return found
	}
	for _, other := range s.rest {
		if s.eq.Equal(item, other) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct elements in the set.
func (s *Set[T]) Len() int { return len(s.hashed) + len(s.rest) }

func (s *Set[T]) key(item T) (any, bool) {
	if s.eq.Key == nil {
		return nil, false
	}
	return s.eq.Key(item)
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Unique returns items with later duplicates removed, preserving the first
// occurrence of every value.
func Unique[T any](items []T, eq Equality[T]) []T {
	seen := NewSet(eq)
	return Filter(items, func(item T, _ int) bool {
		if seen.Contains(item) {
			return false
		}
		seen.Add(item)
		return true
	})
}

// Diff returns the elements of items that are not equal to any element of
// others. Order and duplicates of items are preserved.
func Diff[T any](items []T, eq Equality[T], others ...[]T) []T {
	union := NewSet(eq)
	for _, other := range others {
		union.Add(other...)
	}
	return Filter(items, func(item T, _ int) bool { return !union.Contains(item) })
}

// Intersect returns the elements of items that are equal to at least one
// element in every slice of others. With no others, a copy of items is
// returned.
func Intersect[T any](items []T, eq Equality[T], others ...[]T) []T {
	sets := make([]*Set[T], len(others))
	for i, other := range others {
		sets[i] = NewSet(eq, other...)
	}
	return Filter(items, func(item T, _ int) bool {
		for _, s := range sets {
			if !s.Contains(item) {
				return false
			}
		}
		return true
	})
}
