package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values in place.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// AddNew inserts v and reports whether it was absent before.
func (s Set[T]) AddNew(v T) bool {
	if s.Has(v) {
		return false
	}

	s[v] = struct{}{}
	return true
}

// ToIter yields every member in unspecified order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns every member in unspecified order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
