package instruction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(in Instruction) []string {
	out := make([]string, 0, in.Len())
	for _, c := range in.Components() {
		out = append(out, c.Value)
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "grid line", input: "5 5", want: []string{"5", "5"}},
		{name: "placement line", input: "1 2 N", want: []string{"1", "2", "N"}},
		{name: "navigate line", input: "LRFF", want: []string{"LRFF"}},
		{name: "tab separator", input: "1\t2", want: []string{"1", "2"}},
		{name: "double space keeps empty", input: "1  2", want: []string{"1", "", "2"}},
		{name: "leading space", input: " 1", want: []string{"", "1"}},
		{name: "trailing space", input: "1 ", want: []string{"1", ""}},
		{name: "empty line", input: "", want: []string{""}},
		{name: "single space", input: " ", want: []string{"", ""}},
		{name: "no-break space", input: "1\u00a02", want: []string{"1", "2"}},
		{name: "newline is not a separator", input: "1\n2", want: []string{"1\n2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values(in))
		})
	}
}

func TestParseLength(t *testing.T) {
	in, err := Parse(strings.Repeat("a", MaxLength))
	require.NoError(t, err)
	assert.Equal(t, 1, in.Len())

	_, err = Parse(strings.Repeat("a", MaxLength+1))
	assert.ErrorIs(t, err, ErrInvalid)

	// characters, not bytes
	_, err = Parse(strings.Repeat("é", MaxLength))
	assert.NoError(t, err)

	_, err = ParseMax("1 2 N", 4)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSlice(t *testing.T) {
	in, err := Parse("1 2 N")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, values(in.Slice(0, 2)))
	assert.Equal(t, []string{"N"}, values(in.Slice(2, 3)))
	assert.Equal(t, "1 2 N", in.String())
}

func TestNewCopiesComponents(t *testing.T) {
	components := []Component{{Value: "a"}, {Value: "b"}}
	in := New(components...)
	components[0].Value = "z"

	assert.Equal(t, "a", in.Component(0).Value)

	got := in.Components()
	got[1].Value = "z"
	assert.Equal(t, "b", in.Component(1).Value)
}
