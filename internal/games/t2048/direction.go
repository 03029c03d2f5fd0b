package t2048

import (
	"errors"
	"fmt"
)

// Direction is a unit movement vector. Y grows downward.
type Direction struct {
	DX, DY int
}

// Axis directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Diagonal directions.
var (
	DirUpLeft    = Direction{DX: -1, DY: -1}
	DirUpRight   = Direction{DX: 1, DY: -1}
	DirDownLeft  = Direction{DX: -1, DY: 1}
	DirDownRight = Direction{DX: 1, DY: 1}
)

// String returns a human readable name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// IsZero reports whether d does not move at all.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Variant selects the movement scheme.
type Variant int

const (
	// VariantOriginal moves tiles along rows and columns.
	VariantOriginal Variant = iota
	// VariantDiagonal moves tiles along the diagonals only.
	VariantDiagonal
)

// ErrInvalidVariant is returned for unknown movement schemes.
var ErrInvalidVariant = errors.New("invalid variant")

// Variants lists all movement schemes in menu order.
var Variants = []Variant{VariantOriginal, VariantDiagonal}

var (
	axisDirections     = []Direction{DirUp, DirDown, DirLeft, DirRight}
	diagonalDirections = []Direction{DirUpLeft, DirUpRight, DirDownLeft, DirDownRight}
)

// ParseVariant converts "original" or "diagonal" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "original", "":
		return VariantOriginal, nil
	case "diagonal":
		return VariantDiagonal, nil
	}
	return VariantOriginal, fmt.Errorf("t2048: %w: %q", ErrInvalidVariant, s)
}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantOriginal || v == VariantDiagonal
}

// String returns the config/CLI name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantOriginal:
		return "original"
	case VariantDiagonal:
		return "diagonal"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Label returns the menu label of the variant.
func (v Variant) Label() string {
	if v == VariantDiagonal {
		return "Diagonal"
	}
	return "Original"
}

// Directions returns the directions permitted by the variant.
func (v Variant) Directions() []Direction {
	if v == VariantDiagonal {
		return diagonalDirections
	}
	return axisDirections
}

// Allows reports whether d is a legal move direction for the variant.
func (v Variant) Allows(d Direction) bool {
	for _, a := range v.Directions() {
		if a == d {
			return true
		}
	}
	return false
}

// neighborOffsets returns the forward half of the adjacency set, so each
// adjacent pair is visited once.
func (v Variant) neighborOffsets() []Direction {
	if v == VariantDiagonal {
		return []Direction{DirDownRight, DirDownLeft}
	}
	return []Direction{DirRight, DirDown}
}
