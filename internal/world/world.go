// Package world drives a robot session from protocol lines.
//
// A World moves through three states. It starts in NoGrid and waits for a
// "<width> <height>" line. It then sits in NoRobot until a
// "<x> <y> <orientation>" line places a robot, which makes it Ready. In
// Ready the next command line such as "LRFF" is applied to the robot as
// one batch, and the robot is then released, so the World returns to
// NoRobot. The grid is kept for the rest of the session.
//
// Lines that do not fit the current state are dropped without changing
// anything. A World is meant for one caller; guard it externally if lines
// arrive from several goroutines.
package world

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"robots/internal/geometry"
	"robots/internal/instruction"
	"robots/internal/observe"
	"robots/internal/robot"
)

const source = "world"

// State is the phase of a session.
type State int

const (
	NoGrid State = iota
	NoRobot
	Ready
)

func (s State) String() string {
	switch s {
	case NoGrid:
		return "no-grid"
	case NoRobot:
		return "no-robot"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type World struct {
	grid  *geometry.BoundedGrid
	robot *robot.Robot

	maxCoordinate int
	maxLength     int
	maxNavigate   int
	session       string
	observer      observe.Observer
}

type Option func(*World)

func WithObserver(o observe.Observer) Option {
	return func(w *World) {
		if o != nil {
			w.observer = o
		}
	}
}

// WithMaxCoordinate sets the upper bound for sizes and placements.
func WithMaxCoordinate(max int) Option {
	return func(w *World) { w.maxCoordinate = max }
}

// WithMaxLength sets the longest accepted line.
func WithMaxLength(max int) Option {
	return func(w *World) { w.maxLength = max }
}

// WithMaxNavigateLength sets the longest accepted command string.
func WithMaxNavigateLength(max int) Option {
	return func(w *World) { w.maxNavigate = max }
}

// WithSession overrides the generated session id.
func WithSession(id string) Option {
	return func(w *World) { w.session = id }
}

func New(opts ...Option) *World {
	w := &World{
		maxCoordinate: geometry.MaximumValue,
		maxLength:     instruction.MaxLength,
		maxNavigate:   instruction.MaxNavigateLength,
		observer:      observe.NoOp{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.session == "" {
		w.session = uuid.Must(uuid.NewV7()).String()
	}
	return w
}

func (w *World) State() State {
	switch {
	case w.grid == nil:
		return NoGrid
	case w.robot == nil:
		return NoRobot
	default:
		return Ready
	}
}

func (w *World) Session() string {
	return w.session
}

func (w *World) Grid() (geometry.BoundedGrid, bool) {
	if w.grid == nil {
		return geometry.BoundedGrid{}, false
	}
	return *w.grid, true
}

func (w *World) Robot() (robot.Snapshot, bool) {
	if w.robot == nil {
		return robot.Snapshot{}, false
	}
	return w.robot.Snapshot(), true
}

// Read processes one line. Malformed input is reported to the observer as
// an ignored line and otherwise has no effect.
func (w *World) Read(ctx context.Context, line string) {
	state := w.State()
	if err := w.step(ctx, state, line); err != nil {
		w.emit(ctx, observe.LineIgnored, observe.LevelVerbose, map[string]any{
			"state": state.String(),
			"line":  line,
			"error": err.Error(),
		})
	}
}

// step applies the transition for state. Nothing is mutated unless the line
// parses completely.
func (w *World) step(ctx context.Context, state State, line string) error {
	in, err := instruction.ParseMax(line, w.maxLength)
	if err != nil {
		return err
	}

	switch state {
	case NoGrid:
		size, err := geometry.ParseSize(in, w.maxCoordinate)
		if err != nil {
			return err
		}
		grid := geometry.NewBoundedGrid(size)
		w.grid = &grid
		w.emit(ctx, observe.GridSet, observe.LevelInfo, map[string]any{"grid": grid})

	case NoRobot:
		r, err := robot.Parse(in, w.maxCoordinate)
		if err != nil {
			return err
		}
		w.robot = r
		w.emit(ctx, observe.RobotPlaced, observe.LevelInfo, map[string]any{"robot": r.Snapshot()})

	case Ready:
		nav, err := instruction.ParseNavigateMax(line, w.maxNavigate)
		if err != nil {
			return err
		}
		w.robot.Navigate(nav, *w.grid)
		w.release(ctx, nav)
	}
	return nil
}

// release clears the robot and reports its final state.
func (w *World) release(ctx context.Context, nav instruction.Navigate) {
	previous := w.robot
	w.robot = nil
	w.emit(ctx, observe.RobotReleased, observe.LevelInfo, map[string]any{
		"robot":    previous.Snapshot(),
		"grid":     *w.grid,
		"commands": nav.String(),
	})
}

func (w *World) emit(ctx context.Context, typ observe.EventType, level observe.Level, data map[string]any) {
	w.observer.OnEvent(ctx, observe.Event{
		Type:      typ,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Session:   w.session,
		Data:      data,
	})
}

// ReadLines feeds every line of r to Read until r is exhausted or ctx is
// done. A trailing carriage return is stripped from each line. Lines of any
// length reach Read, so an over-long line is ignored like any other.
func (w *World) ReadLines(ctx context.Context, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && line == "" {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		line = strings.TrimSuffix(line, "\n")
		w.Read(ctx, strings.TrimSuffix(line, "\r"))
		if err == io.EOF {
			return nil
		}
	}
}
