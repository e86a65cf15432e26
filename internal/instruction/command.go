package instruction

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Command is a single navigation step.
type Command string

const (
	Left    Command = "L"
	Right   Command = "R"
	Forward Command = "F"
)

var commands = []Command{Left, Right, Forward}

// Commands returns the supported commands in declaration order.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// ParseCommand maps a single letter, in either case, to its Command.
func ParseCommand(s string) (Command, error) {
	upper := Upper(s)
	for _, c := range commands {
		if string(c) == upper {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown command %q: %w", s, ErrInvalid)
}

func (c Command) String() string {
	return string(c)
}

// Upper is the capitalization applied to protocol letters before matching.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// alphabet lists every command letter in both cases, e.g. "LRFlrf".
func alphabet() string {
	var b strings.Builder
	for _, c := range commands {
		b.WriteString(strings.ToUpper(string(c)))
	}
	for _, c := range commands {
		b.WriteString(strings.ToLower(string(c)))
	}
	return b.String()
}
