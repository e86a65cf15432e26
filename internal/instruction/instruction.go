// Package instruction turns raw protocol lines into tokenized instructions
// and navigation command batches.
package instruction

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest line, in characters, accepted by Parse.
const MaxLength = 100

// ErrInvalid is returned, possibly wrapped, by every parser in this module
// when its input is malformed or out of range.
var ErrInvalid = errors.New("invalid instruction")

// Component is a single raw token of an Instruction.
type Component struct {
	Value string
}

// Instruction is an ordered list of components split from one line.
type Instruction struct {
	components []Component
}

// New wraps components without any validation.
func New(components ...Component) Instruction {
	return Instruction{components: append([]Component(nil), components...)}
}

// Parse tokenizes s using MaxLength.
func Parse(s string) (Instruction, error) {
	return ParseMax(s, MaxLength)
}

// ParseMax splits s on whitespace. Consecutive, leading and trailing
// separators yield empty components, so "a  b" has three components and
// the empty string has one.
func ParseMax(s string, max int) (Instruction, error) {
	if n := utf8.RuneCountInString(s); n > max {
		return Instruction{}, fmt.Errorf("line of %d characters exceeds %d: %w", n, max, ErrInvalid)
	}

	var components []Component
	start := 0
	for i, r := range s {
		if isSeparator(r) {
			components = append(components, Component{Value: s[start:i]})
			start = i + utf8.RuneLen(r)
		}
	}
	components = append(components, Component{Value: s[start:]})

	return Instruction{components: components}, nil
}

// isSeparator reports horizontal whitespace; line breaks are not separators.
func isSeparator(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

func (in Instruction) Components() []Component {
	return append([]Component(nil), in.components...)
}

func (in Instruction) Len() int {
	return len(in.components)
}

func (in Instruction) Component(i int) Component {
	return in.components[i]
}

// Slice returns the sub-instruction of components [from, to).
func (in Instruction) Slice(from, to int) Instruction {
	return New(in.components[from:to]...)
}

func (in Instruction) String() string {
	values := make([]string, len(in.components))
	for i, c := range in.components {
		values[i] = c.Value
	}
	return strings.Join(values, " ")
}
