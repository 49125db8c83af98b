package enums

import (
	"github.com/lattice-ui/enums/internal/assert"
)

// Layout allocates bit offsets for enum-valued fields packed into a single
// 64-bit word. Fields are claimed in call order, lowest bits first.
type Layout struct {
	used uint
}

// Bits returns the total number of bits claimed so far.
func (l *Layout) Bits() uint {
	return l.used
}

// Field addresses one enum-valued field inside a packed word. Construct with
// NewField.
type Field[E Sequential] struct {
	shift uint
	mask  uint64
}

// NewField claims the next BitCount[E]() bits of the layout and returns the
// field addressing them. Claiming more than 64 bits in total is a
// programming error. An enum with a single legitimate value claims no bits;
// its field always reads as ordinal zero.
func NewField[E Sequential](l *Layout) Field[E] {
	width := uint(BitCount[E]())
	assert.That(l.used+width <= 64, "enums: field layout exceeds 64 bits")
	f := Field[E]{
		shift: l.used,
		mask:  (uint64(1)<<width - 1) << l.used,
	}
	l.used += width
	return f
}

// Get extracts the field's value from the packed word.
func (f Field[E]) Get(word uint64) E {
	return E((word & f.mask) >> f.shift)
}

// Set returns word with this field replaced by e, leaving all other bits
// untouched. Storing a value outside [0, Count) is a caller error; only the
// low BitCount bits of e are kept.
func (f Field[E]) Set(word uint64, e E) uint64 {
	return (word &^ f.mask) | (uint64(ToUnderlying(e))<<f.shift)&f.mask
}
