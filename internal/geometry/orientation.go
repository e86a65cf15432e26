package geometry

import (
	"fmt"

	"robots/internal/instruction"
)

// Orientation is a compass heading.
type Orientation string

const (
	North Orientation = "N"
	East  Orientation = "E"
	South Orientation = "S"
	West  Orientation = "W"
)

// orientations is the cyclic turning order; Right advances, Left retreats.
var orientations = []Orientation{North, East, South, West}

// ParseOrientation reads a single-component instruction holding one of the
// letters N, E, S or W in either case.
func ParseOrientation(in instruction.Instruction) (Orientation, error) {
	if in.Len() != 1 {
		return "", fmt.Errorf("orientation needs 1 component, got %d: %w", in.Len(), instruction.ErrInvalid)
	}
	letter := instruction.Upper(in.Component(0).Value)
	for _, o := range orientations {
		if string(o) == letter {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown orientation %q: %w", in.Component(0).Value, instruction.ErrInvalid)
}

func (o Orientation) index() int {
	for i, candidate := range orientations {
		if candidate == o {
			return i
		}
	}
	return 0
}

// Respond returns the heading after a turn command. Forward leaves the
// heading unchanged. The boolean is false only for commands it does not
// know, in which case o is returned.
func (o Orientation) Respond(cmd instruction.Command) (Orientation, bool) {
	i := o.index()
	switch cmd {
	case instruction.Left:
		i--
		if i < 0 {
			i = len(orientations) - 1
		}
	case instruction.Right:
		i++
		if i >= len(orientations) {
			i = 0
		}
	case instruction.Forward:
	default:
		return o, false
	}
	return orientations[i], true
}

func (o Orientation) String() string {
	return string(o)
}
