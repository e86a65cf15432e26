package observe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"robots/internal/geometry"
	"robots/internal/robot"
)

// Event types emitted by a World.
const (
	GridSet       EventType = "world.grid.set"
	RobotPlaced   EventType = "world.robot.placed"
	RobotReleased EventType = "world.robot.released"
	LineIgnored   EventType = "world.line.ignored"
)

// Format selects how released robots are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Report writes the final state of every released robot to w. When draw is
// set the grid is rendered below each text entry, followed by a note when
// the robot ended up off the grid.
type Report struct {
	w      io.Writer
	format Format
	draw   bool
	json   *json.Encoder
	yaml   *yaml.Encoder
	err    error
}

func NewReport(w io.Writer, format Format, draw bool) *Report {
	r := &Report{w: w, format: format, draw: draw}
	switch format {
	case FormatJSON:
		r.json = json.NewEncoder(w)
	case FormatYAML:
		r.yaml = yaml.NewEncoder(w)
		r.yaml.SetIndent(2)
	}
	return r
}

func (r *Report) OnEvent(_ context.Context, event Event) {
	if r.err != nil || event.Type != RobotReleased {
		return
	}
	snapshot, ok := event.Data["robot"].(robot.Snapshot)
	if !ok {
		return
	}

	switch r.format {
	case FormatJSON:
		r.err = r.json.Encode(snapshot)
	case FormatYAML:
		r.err = r.yaml.Encode(snapshot)
	default:
		_, r.err = fmt.Fprintln(r.w, snapshot.String())
		if r.err == nil && r.draw {
			if grid, ok := event.Data["grid"].(geometry.BoundedGrid); ok {
				r.err = grid.Render(r.w, snapshot.Position(), geometry.Orientation(snapshot.Orientation))
				if r.err == nil && !grid.Contains(snapshot.Position()) {
					_, r.err = fmt.Fprintf(r.w, "outside grid %s\n", grid)
				}
			}
		}
	}
}

// Err returns the first write error, after which the report stops writing.
func (r *Report) Err() error {
	return r.err
}

// Close finishes the YAML stream, if any, and returns Err.
func (r *Report) Close() error {
	if r.yaml != nil {
		if err := r.yaml.Close(); err != nil && r.err == nil {
			r.err = err
		}
	}
	return r.err
}
