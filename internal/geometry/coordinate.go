// Package geometry holds the value types of the robot grid: coordinates,
// orientations, positions, sizes and the bounded grid itself.
package geometry

import (
	"fmt"
	"strconv"

	"robots/internal/instruction"
)

// MaximumValue is the default upper bound for parsed coordinates.
const MaximumValue = 50

// Coordinate is a position along one grid axis.
//
// Only ParseCoordinate enforces bounds. Values built with NewCoordinate or
// produced by Add and Sub are unchecked and may be negative or exceed the
// maximum.
type Coordinate struct {
	value int
}

func NewCoordinate(value int) Coordinate {
	return Coordinate{value: value}
}

// ParseCoordinate parses s against MaximumValue.
func ParseCoordinate(s string) (Coordinate, error) {
	return ParseCoordinateMax(s, MaximumValue)
}

// ParseCoordinateMax parses a base-10 integer no greater than max. There is
// no lower bound.
func ParseCoordinateMax(s string, max int) (Coordinate, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: %w", s, instruction.ErrInvalid)
	}
	if n > max {
		return Coordinate{}, fmt.Errorf("coordinate %d exceeds %d: %w", n, max, instruction.ErrInvalid)
	}
	return Coordinate{value: n}, nil
}

func (c Coordinate) Value() int {
	return c.value
}

func (c Coordinate) Add(o Coordinate) Coordinate {
	return NewCoordinate(c.value + o.value)
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return NewCoordinate(c.value - o.value)
}

func (c Coordinate) String() string {
	return strconv.Itoa(c.value)
}
