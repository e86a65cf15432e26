package geometry

import (
	"fmt"

	"robots/internal/instruction"
)

// Size is the extent of a grid.
type Size struct {
	Width  Coordinate
	Height Coordinate
}

// ParseSize reads "<width> <height>" with both values no greater than max.
func ParseSize(in instruction.Instruction, max int) (Size, error) {
	w, h, err := parsePair(in, max)
	if err != nil {
		return Size{}, fmt.Errorf("size: %w", err)
	}
	return Size{Width: w, Height: h}, nil
}

func (s Size) String() string {
	return s.Width.String() + " " + s.Height.String()
}

// BoundedGrid is a Size anchored at the origin.
type BoundedGrid struct {
	origin Position
	size   Size
}

func NewBoundedGrid(size Size) BoundedGrid {
	return BoundedGrid{size: size}
}

func (g BoundedGrid) Origin() Position {
	return g.origin
}

func (g BoundedGrid) Size() Size {
	return g.size
}

func (g BoundedGrid) LowerLeft() [2]Coordinate {
	return [2]Coordinate{g.origin.X, g.origin.Y}
}

func (g BoundedGrid) UpperRight() [2]Coordinate {
	return [2]Coordinate{g.size.Width, g.size.Height}
}

// Contains reports whether p lies within the corners, inclusive. Navigation
// does not consult it.
func (g BoundedGrid) Contains(p Position) bool {
	ll, ur := g.LowerLeft(), g.UpperRight()
	return p.X.Value() >= ll[0].Value() && p.X.Value() <= ur[0].Value() &&
		p.Y.Value() >= ll[1].Value() && p.Y.Value() <= ur[1].Value()
}

func (g BoundedGrid) String() string {
	return g.origin.String() + " " + g.size.String()
}

// MarshalText encodes the grid as String does, so structured logs carry
// "0 0 5 5" rather than an empty object.
func (g BoundedGrid) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}
