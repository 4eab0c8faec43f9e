// Package collections provides generic filtering helpers for maps and sets.
package collections

import "github.com/samber/lo"

// FilterMap returns a new map containing only the entries of m for which
// pred returns true. A nil map yields an empty map, never nil.
func FilterMap[K comparable, V any](m map[K]V, pred func(K, V) bool) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return lo.PickBy(m, pred)
}

// Set is an unordered collection of unique elements.
type Set[T comparable] map[T]struct{}

// NewSet constructs a Set from the given elements.
func NewSet[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts an element into the set.
func (s Set[T]) Add(e T) {
	s[e] = struct{}{}
}

// Contains reports whether e is in the set.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Values returns the set's elements in unspecified order.
func (s Set[T]) Values() []T {
	return lo.Keys(s)
}

// FilterSet returns a new set containing only the elements of s for which
// pred returns true. A nil set yields an empty set, never nil.
func FilterSet[T comparable](s Set[T], pred func(T) bool) Set[T] {
	if s == nil {
		return Set[T]{}
	}
	return Set[T](lo.PickBy(s, func(e T, _ struct{}) bool {
		return pred(e)
	}))
}
