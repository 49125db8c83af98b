// Package enums provides traits for sequential enumerations: integer-backed
// enum types whose legitimate values form the contiguous range [0, N) for a
// count N known per type. It answers which types qualify, how many bits their
// ordinals need, and how to walk every value in order, so that enum-valued
// fields can be packed into bitfields and iterated generically without
// per-enum bounds logic.
//
// A type opts in by declaring its ordinal count on the value receiver:
//
//	type Direction uint8
//
//	const (
//	    DirectionInherit Direction = 0
//	    DirectionLTR     Direction = 1
//	    DirectionRTL     Direction = 2
//	)
//
//	func (Direction) OrdinalCount() int32 { return 3 }
//
// Everything gated on the Sequential constraint fails to compile for types
// that have not opted in. The count itself cannot be proven positive by the
// type system; a non-positive count is caught at first use in development
// builds and by Register.
package enums

import (
	"iter"
	"math/bits"

	"github.com/lattice-ui/enums/internal/assert"
)

// Enum constrains any integer-backed enumeration type.
type Enum interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Sequential constrains enumeration types whose legitimate values are
// contiguous from zero. OrdinalCount must be callable on the zero value and
// return the same positive constant for every value of the type.
type Sequential interface {
	Enum
	OrdinalCount() int32
}

// Count returns the ordinal count of E.
func Count[E Sequential]() int32 {
	var zero E
	return zero.OrdinalCount()
}

// BitCount returns the number of bits needed to represent every ordinal of E.
// An enum with a single legitimate value needs no bits at all.
func BitCount[E Sequential]() int {
	n := Count[E]()
	assert.That(n > 0, "enums: ordinal count of %T must be positive, got %d", *new(E), n)
	return bits.Len64(uint64(n - 1))
}

// ToUnderlying converts an enumeration value to its underlying integer
// representation. Sign and magnitude are preserved for any enum whose
// underlying value fits in an int64, which covers every enumeration this
// package is meant for.
func ToUnderlying[E Enum](e E) int64 {
	return int64(e)
}

// Ordinals returns a sequence over every value of E in ascending ordinal
// order, from ordinal 0 through Count[E]()-1. The sequence is finite and
// restartable: every range over it starts again from ordinal zero, and
// independently obtained sequences share no state.
func Ordinals[E Sequential]() iter.Seq[E] {
	n := Count[E]()
	assert.That(n > 0, "enums: ordinal count of %T must be positive, got %d", *new(E), n)
	return func(yield func(E) bool) {
		for i := int32(0); i < n; i++ {
			if !yield(E(i)) {
				return
			}
		}
	}
}

// Values returns every value of E in ascending ordinal order as a freshly
// allocated slice.
func Values[E Sequential]() []E {
	values := make([]E, 0, Count[E]())
	for v := range Ordinals[E]() {
		values = append(values, v)
	}
	return values
}
