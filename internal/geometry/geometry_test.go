package geometry

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robots/internal/instruction"
)

func mustInstruction(t *testing.T, s string) instruction.Instruction {
	t.Helper()
	in, err := instruction.Parse(s)
	require.NoError(t, err)
	return in
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "0", want: 0},
		{input: "50", want: 50},
		{input: "51", wantErr: true},
		{input: "-3", want: -3},
		{input: "+7", want: 7},
		{input: "x", wantErr: true},
		{input: "", wantErr: true},
		{input: "1.5", wantErr: true},
		{input: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, instruction.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestCoordinateArithmeticIsUnchecked(t *testing.T) {
	top, err := ParseCoordinate("50")
	require.NoError(t, err)

	assert.Equal(t, 51, top.Add(NewCoordinate(1)).Value())
	assert.Equal(t, -1, NewCoordinate(0).Sub(NewCoordinate(1)).Value())
	assert.Equal(t, "-1", NewCoordinate(-1).String())
	assert.Equal(t, 0, Coordinate{}.Value())
}

func TestParseCoordinateMax(t *testing.T) {
	_, err := ParseCoordinateMax("10", 9)
	assert.ErrorIs(t, err, instruction.ErrInvalid)

	c, err := ParseCoordinateMax("100", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Value())
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input   string
		want    Orientation
		wantErr bool
	}{
		{input: "N", want: North},
		{input: "e", want: East},
		{input: "S", want: South},
		{input: "w", want: West},
		{input: "X", wantErr: true},
		{input: "NE", wantErr: true},
		{input: "N E", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrientation(mustInstruction(t, tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, instruction.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientationRespond(t *testing.T) {
	tests := []struct {
		from Orientation
		cmd  instruction.Command
		want Orientation
	}{
		{North, instruction.Left, West},
		{West, instruction.Left, South},
		{South, instruction.Left, East},
		{East, instruction.Left, North},
		{North, instruction.Right, East},
		{East, instruction.Right, South},
		{South, instruction.Right, West},
		{West, instruction.Right, North},
		{South, instruction.Forward, South},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+tt.cmd.String(), func(t *testing.T) {
			got, ok := tt.from.Respond(tt.cmd)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	got, ok := East.Respond(instruction.Command("B"))
	assert.False(t, ok)
	assert.Equal(t, East, got)
}

func TestPositionMove(t *testing.T) {
	start := NewPosition(1, 2)

	assert.Equal(t, NewPosition(1, 3), start.Move(North))
	assert.Equal(t, NewPosition(1, 1), start.Move(South))
	assert.Equal(t, NewPosition(2, 2), start.Move(East))
	assert.Equal(t, NewPosition(0, 2), start.Move(West))
	assert.Equal(t, NewPosition(0, -1), Position{}.Move(South).Move(East).Move(West))
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input   string
		want    Position
		wantErr bool
	}{
		{input: "1 2", want: NewPosition(1, 2)},
		{input: "0 50", want: NewPosition(0, 50)},
		{input: "1 51", wantErr: true},
		{input: "a 2", wantErr: true},
		{input: "1", wantErr: true},
		{input: "1 2 3", wantErr: true},
		{input: "1  2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePosition(mustInstruction(t, tt.input), MaximumValue)
			if tt.wantErr {
				assert.ErrorIs(t, err, instruction.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseSize(t *testing.T) {
	size, err := ParseSize(mustInstruction(t, "5 3"), MaximumValue)
	require.NoError(t, err)
	assert.Equal(t, 5, size.Width.Value())
	assert.Equal(t, 3, size.Height.Value())
	assert.Equal(t, "5 3", size.String())

	for _, bad := range []string{"5", "5 x", "51 5", "5 5 5", " 5 5"} {
		_, err := ParseSize(mustInstruction(t, bad), MaximumValue)
		assert.ErrorIs(t, err, instruction.ErrInvalid, bad)
	}
}

func TestBoundedGrid(t *testing.T) {
	size, err := ParseSize(mustInstruction(t, "5 4"), MaximumValue)
	require.NoError(t, err)
	grid := NewBoundedGrid(size)

	assert.Equal(t, Position{}, grid.Origin())
	assert.Equal(t, [2]Coordinate{NewCoordinate(0), NewCoordinate(0)}, grid.LowerLeft())
	assert.Equal(t, [2]Coordinate{NewCoordinate(5), NewCoordinate(4)}, grid.UpperRight())
	assert.Equal(t, "0 0 5 4", grid.String())

	text, err := grid.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0 0 5 4", string(text))

	encoded, err := json.Marshal(map[string]any{"grid": grid})
	require.NoError(t, err)
	assert.JSONEq(t, `{"grid":"0 0 5 4"}`, string(encoded))

	assert.True(t, grid.Contains(NewPosition(0, 0)))
	assert.True(t, grid.Contains(NewPosition(5, 4)))
	assert.False(t, grid.Contains(NewPosition(6, 4)))
	assert.False(t, grid.Contains(NewPosition(0, -1)))
}

func TestRender(t *testing.T) {
	grid := NewBoundedGrid(Size{Width: NewCoordinate(2), Height: NewCoordinate(1)})

	var buf bytes.Buffer
	require.NoError(t, grid.Render(&buf, NewPosition(1, 0), South))
	assert.Equal(t, ". . .\n. S .\n", buf.String())

	buf.Reset()
	require.NoError(t, grid.Render(&buf, NewPosition(9, 9), North))
	assert.Equal(t, ". . .\n. . .\n", buf.String())
}

func TestRenderNegativeExtent(t *testing.T) {
	grid := NewBoundedGrid(Size{Width: NewCoordinate(-1), Height: NewCoordinate(2)})

	var buf bytes.Buffer
	require.NoError(t, grid.Render(&buf, Position{}, North))
	assert.Empty(t, buf.String())
}

func TestWalkStopsAtIntLimits(t *testing.T) {
	var up []int
	walk(math.MaxInt-1, math.MaxInt, func(i int) { up = append(up, i) })
	assert.Equal(t, []int{math.MaxInt - 1, math.MaxInt}, up)

	var down []int
	walk(math.MinInt+1, math.MinInt, func(i int) { down = append(down, i) })
	assert.Equal(t, []int{math.MinInt + 1, math.MinInt}, down)

	var single []int
	walk(3, 3, func(i int) { single = append(single, i) })
	assert.Equal(t, []int{3}, single)
}

func TestCoordinateRoundTrip(t *testing.T) {
	for n := 0; n <= MaximumValue; n++ {
		c, err := ParseCoordinate(strconv.Itoa(n))
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(n), c.String())
	}
}
