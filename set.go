package enums

import (
	"iter"

	"github.com/kelindar/bitmap"
)

// Set is a collection of distinct values of a sequential enumeration, backed
// by a bitmap keyed on ordinals. The zero value is an empty set ready for
// use. Set is not safe for concurrent mutation.
type Set[E Sequential] struct {
	bits bitmap.Bitmap
}

// Add inserts e into the set.
func (s *Set[E]) Add(e E) {
	s.bits.Set(uint32(ToUnderlying(e)))
}

// Remove deletes e from the set.
func (s *Set[E]) Remove(e E) {
	s.bits.Remove(uint32(ToUnderlying(e)))
}

// Contains reports whether e is in the set.
func (s *Set[E]) Contains(e E) bool {
	return s.bits.Contains(uint32(ToUnderlying(e)))
}

// Len returns the number of values in the set.
func (s *Set[E]) Len() int {
	return s.bits.Count()
}

// Clear removes every value from the set.
func (s *Set[E]) Clear() {
	s.bits.Clear()
}

// Fill inserts every value of E into the set.
func (s *Set[E]) Fill() {
	for v := range Ordinals[E]() {
		s.Add(v)
	}
}

// All returns a sequence over the values in the set in ascending ordinal
// order. Mutating the set while ranging over the sequence is undefined.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range Ordinals[E]() {
			if !s.Contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
