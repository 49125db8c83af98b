// Package testenums provides the sequential enumerations used by the enums
// package tests.
package testenums

// Layout-flavored enums.

type Direction uint8

const (
	DirectionInherit Direction = 0
	DirectionLTR     Direction = 1
	DirectionRTL     Direction = 2
)

func (Direction) OrdinalCount() int32 { return 3 }

type Align int32

const (
	AlignAuto      Align = 0
	AlignFlexStart Align = 1
	AlignCenter    Align = 2
	AlignFlexEnd   Align = 3
	AlignStretch   Align = 4
)

func (Align) OrdinalCount() int32 { return 5 }

type Display uint8

const (
	DisplayFlex Display = 0
	DisplayNone Display = 1
)

func (Display) OrdinalCount() int32 { return 2 }

type Unit uint8

const (
	UnitUndefined Unit = 0
	UnitPoint     Unit = 1
	UnitPercent   Unit = 2
	UnitAuto      Unit = 3
)

func (Unit) OrdinalCount() int32 { return 4 }

// Solo has exactly one legitimate value, so it needs zero bits of storage.
type Solo uint8

const SoloOnly Solo = 0

func (Solo) OrdinalCount() int32 { return 1 }

// Wide and Wider exercise ordinal counts around the one-byte boundary.
// Their values are addressed by ordinal only; no named constants.

type Wide uint16

func (Wide) OrdinalCount() int32 { return 256 }

type Wider uint16

func (Wider) OrdinalCount() int32 { return 257 }

// Empty and Broken declare non-positive counts and must never qualify.

type Empty uint8

func (Empty) OrdinalCount() int32 { return 0 }

type Broken int8

func (Broken) OrdinalCount() int32 { return -1 }

// Elevation is integer-backed but not sequential; it carries negative values
// and does not declare an ordinal count.
type Elevation int8

const (
	ElevationBelow Elevation = -40
	ElevationLevel Elevation = 0
	ElevationAbove Elevation = 25
)
