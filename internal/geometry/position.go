package geometry

import (
	"fmt"

	"robots/internal/instruction"
)

// Position is an (x, y) cell. The zero value is the origin.
type Position struct {
	X Coordinate
	Y Coordinate
}

func NewPosition(x, y int) Position {
	return Position{X: NewCoordinate(x), Y: NewCoordinate(y)}
}

// Move returns the neighbouring cell in direction o. No bounds are applied.
func (p Position) Move(o Orientation) Position {
	switch o {
	case North:
		return Position{X: p.X, Y: p.Y.Add(NewCoordinate(1))}
	case South:
		return Position{X: p.X, Y: p.Y.Add(NewCoordinate(-1))}
	case East:
		return Position{X: p.X.Add(NewCoordinate(1)), Y: p.Y}
	case West:
		return Position{X: p.X.Add(NewCoordinate(-1)), Y: p.Y}
	}
	return p
}

// ParsePosition reads "<x> <y>" with both coordinates no greater than max.
func ParsePosition(in instruction.Instruction, max int) (Position, error) {
	x, y, err := parsePair(in, max)
	if err != nil {
		return Position{}, fmt.Errorf("position: %w", err)
	}
	return Position{X: x, Y: y}, nil
}

func parsePair(in instruction.Instruction, max int) (Coordinate, Coordinate, error) {
	if in.Len() != 2 {
		return Coordinate{}, Coordinate{}, fmt.Errorf("need 2 components, got %d: %w", in.Len(), instruction.ErrInvalid)
	}
	first, err := ParseCoordinateMax(in.Component(0).Value, max)
	if err != nil {
		return Coordinate{}, Coordinate{}, err
	}
	second, err := ParseCoordinateMax(in.Component(1).Value, max)
	if err != nil {
		return Coordinate{}, Coordinate{}, err
	}
	return first, second, nil
}

func (p Position) String() string {
	return p.X.String() + " " + p.Y.String()
}
