// Package robot holds the navigating robot and its placement parsing.
package robot

import (
	"fmt"

	"robots/internal/geometry"
	"robots/internal/instruction"
)

// components is the length of a placement instruction "<x> <y> <o>".
const components = 3

// Robot represents robot position and heading in a 2D grid
type Robot struct {
	position    geometry.Position
	orientation geometry.Orientation
}

func New(position geometry.Position, orientation geometry.Orientation) *Robot {
	return &Robot{position: position, orientation: orientation}
}

// Parse places a robot from "<x> <y> <orientation>", coordinates bounded
// by max.
func Parse(in instruction.Instruction, max int) (*Robot, error) {
	if in.Len() != components {
		return nil, fmt.Errorf("robot needs %d components, got %d: %w", components, in.Len(), instruction.ErrInvalid)
	}

	position, err := geometry.ParsePosition(in.Slice(0, 2), max)
	if err != nil {
		return nil, fmt.Errorf("robot: %w", err)
	}

	orientation, err := geometry.ParseOrientation(in.Slice(2, 3))
	if err != nil {
		return nil, fmt.Errorf("robot: %w", err)
	}

	return New(position, orientation), nil
}

// Navigate applies every command in order. The grid is not used to limit
// movement.
func (r *Robot) Navigate(nav instruction.Navigate, _ geometry.BoundedGrid) {
	for _, cmd := range nav.Commands() {
		switch cmd {
		case instruction.Forward:
			r.position = r.position.Move(r.orientation)
		case instruction.Left, instruction.Right:
			if o, ok := r.orientation.Respond(cmd); ok {
				r.orientation = o
			}
		}
	}
}

func (r *Robot) Position() geometry.Position {
	return r.position
}

func (r *Robot) Orientation() geometry.Orientation {
	return r.orientation
}

func (r *Robot) Snapshot() Snapshot {
	return Snapshot{
		X:           r.position.X.Value(),
		Y:           r.position.Y.Value(),
		Orientation: r.orientation.String(),
	}
}

func (r *Robot) String() string {
	return r.Snapshot().String()
}

// Snapshot is a detached copy of a robot's state.
type Snapshot struct {
	X           int    `json:"x" yaml:"x"`
	Y           int    `json:"y" yaml:"y"`
	Orientation string `json:"orientation" yaml:"orientation"`
}

func (s Snapshot) Position() geometry.Position {
	return geometry.NewPosition(s.X, s.Y)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%d %d %s", s.X, s.Y, s.Orientation)
}
