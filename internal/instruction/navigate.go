package instruction

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// MaxNavigateLength is the longest command string accepted by ParseNavigate.
const MaxNavigateLength = 100

type navigateProgram struct {
	Commands []string `parser:"@Command*"`
}

var (
	commandPattern = regexp.MustCompile("[" + alphabet() + "]")

	navigateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Command", Pattern: "[" + alphabet() + "]"},
	})

	navigateParser = participle.MustBuild[navigateProgram](participle.Lexer(navigateLexer))
)

// Navigate is a decoded batch of commands, replayed in order.
type Navigate struct {
	commands []Command
}

// NewNavigate builds a batch from already valid commands.
func NewNavigate(commands ...Command) Navigate {
	return Navigate{commands: append([]Command(nil), commands...)}
}

// ParseNavigate decodes s using MaxNavigateLength.
func ParseNavigate(s string) (Navigate, error) {
	return ParseNavigateMax(s, MaxNavigateLength)
}

// ParseNavigateMax decodes a compact command string such as "LRFF". Every
// character must be a command letter; otherwise nothing is decoded.
func ParseNavigateMax(s string, max int) (Navigate, error) {
	if n := utf8.RuneCountInString(s); n > max {
		return Navigate{}, fmt.Errorf("command string of %d characters exceeds %d: %w", n, max, ErrInvalid)
	}
	if rest := commandPattern.ReplaceAllString(s, ""); rest != "" {
		return Navigate{}, fmt.Errorf("unknown commands %q: %w", rest, ErrInvalid)
	}
	if s == "" {
		return Navigate{}, nil
	}

	program, err := navigateParser.ParseString("navigate", s)
	if err != nil {
		return Navigate{}, fmt.Errorf("%v: %w", err, ErrInvalid)
	}

	decoded := make([]Command, 0, len(program.Commands))
	for _, letter := range program.Commands {
		c, err := ParseCommand(letter)
		if err != nil {
			return Navigate{}, err
		}
		decoded = append(decoded, c)
	}
	return Navigate{commands: decoded}, nil
}

func (n Navigate) Commands() []Command {
	return append([]Command(nil), n.commands...)
}

func (n Navigate) Len() int {
	return len(n.commands)
}

func (n Navigate) String() string {
	var b strings.Builder
	for _, c := range n.commands {
		b.WriteString(string(c))
	}
	return b.String()
}
