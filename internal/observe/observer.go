// Package observe carries World events to logs and reports. Observers are
// called synchronously by the World that emits the event.
package observe

import (
	"context"
	"log/slog"
	"time"
)

// Level is event severity.
type Level int

const (
	LevelVerbose Level = 5
	LevelInfo    Level = 9
)

func (l Level) String() string {
	switch {
	case l <= 8:
		return "DEBUG"
	case l <= 12:
		return "INFO"
	case l <= 16:
		return "WARN"
	default:
		return "ERROR"
	}
}

// SlogLevel maps l onto the slog level used when logging the event.
func (l Level) SlogLevel() slog.Level {
	switch {
	case l <= 8:
		return slog.LevelDebug
	case l <= 12:
		return slog.LevelInfo
	case l <= 16:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// EventType names an event, e.g. "world.robot.released".
type EventType string

type Event struct {
	Type      EventType
	Level     Level
	Timestamp time.Time
	Source    string
	Session   string
	Data      map[string]any
}

// Observer receives events.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoOp discards all events.
type NoOp struct{}

func (NoOp) OnEvent(context.Context, Event) {}

// Multi fans out events to every non-nil observer in order.
type Multi struct {
	observers []Observer
}

func NewMulti(observers ...Observer) *Multi {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &Multi{observers: filtered}
}

func (m *Multi) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m.observers {
		obs.OnEvent(ctx, event)
	}
}

// Slog emits events to a slog.Logger: the event type is the message and
// Data keys become attributes.
type Slog struct {
	logger *slog.Logger
}

func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

func (o *Slog) OnEvent(ctx context.Context, event Event) {
	attrs := make([]slog.Attr, 0, len(event.Data)+2)
	attrs = append(attrs, slog.String("source", event.Source), slog.String("session", event.Session))
	for k, v := range event.Data {
		attrs = append(attrs, slog.Any(k, v))
	}
	o.logger.LogAttrs(ctx, event.Level.SlogLevel(), string(event.Type), attrs...)
}
