package enums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-ui/enums"
	. "github.com/lattice-ui/enums/internal/testenums"
)

func TestLayout_PacksFieldsInOrder(t *testing.T) {
	t.Parallel()

	var l enums.Layout
	dir := enums.NewField[Direction](&l) // 2 bits
	align := enums.NewField[Align](&l)   // 3 bits
	solo := enums.NewField[Solo](&l)     // 0 bits
	disp := enums.NewField[Display](&l)  // 1 bit
	require.Equal(t, uint(6), l.Bits())

	var word uint64
	word = dir.Set(word, DirectionRTL)
	word = align.Set(word, AlignStretch)
	word = disp.Set(word, DisplayNone)

	assert.Equal(t, DirectionRTL, dir.Get(word))
	assert.Equal(t, AlignStretch, align.Get(word))
	assert.Equal(t, SoloOnly, solo.Get(word))
	assert.Equal(t, DisplayNone, disp.Get(word))
}

func TestField_SetLeavesNeighboursUntouched(t *testing.T) {
	t.Parallel()

	var l enums.Layout
	dir := enums.NewField[Direction](&l)
	align := enums.NewField[Align](&l)
	disp := enums.NewField[Display](&l)

	var word uint64
	word = dir.Set(word, DirectionLTR)
	word = align.Set(word, AlignFlexEnd)
	word = disp.Set(word, DisplayNone)

	word = align.Set(word, AlignCenter)

	assert.Equal(t, DirectionLTR, dir.Get(word))
	assert.Equal(t, AlignCenter, align.Get(word))
	assert.Equal(t, DisplayNone, disp.Get(word))
}

func TestField_RoundTripEveryOrdinal(t *testing.T) {
	t.Parallel()

	var l enums.Layout
	unit := enums.NewField[Unit](&l)
	wide := enums.NewField[Wide](&l)

	for u := range enums.Ordinals[Unit]() {
		for w := range enums.Ordinals[Wide]() {
			var word uint64
			word = unit.Set(word, u)
			word = wide.Set(word, w)
			assert.Equal(t, u, unit.Get(word))
			assert.Equal(t, w, wide.Get(word))
		}
	}
}

func TestField_ZeroWidth(t *testing.T) {
	t.Parallel()

	var l enums.Layout
	solo := enums.NewField[Solo](&l)
	assert.Equal(t, uint(0), l.Bits())

	// Storing the only value writes no bits and reading always yields it.
	word := uint64(0xFFFFFFFFFFFFFFFF)
	assert.Equal(t, word, solo.Set(word, SoloOnly))
}

func TestNewField_PanicsBeyondWord(t *testing.T) {
	t.Parallel()

	var l enums.Layout
	for range 7 {
		enums.NewField[Wider](&l) // 9 bits each
	}
	enums.NewField[Display](&l)
	require.Equal(t, uint(64), l.Bits())

	require.Panics(t, func() { enums.NewField[Display](&l) })
}
