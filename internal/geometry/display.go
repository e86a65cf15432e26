package geometry

import (
	"bufio"
	"io"
)

// Render draws the grid top row first, marking the cell at p with the
// letter of o. A position outside the grid is not drawn, and a grid with a
// negative extent draws nothing.
func (g BoundedGrid) Render(w io.Writer, p Position, o Orientation) error {
	bw := bufio.NewWriter(w)
	ll, ur := g.LowerLeft(), g.UpperRight()
	if ur[0].Value() < ll[0].Value() || ur[1].Value() < ll[1].Value() {
		return nil
	}
	walk(ur[1].Value(), ll[1].Value(), func(y int) {
		walk(ll[0].Value(), ur[0].Value(), func(x int) {
			if x != ll[0].Value() {
				bw.WriteByte(' ')
			}
			if p.X.Value() == x && p.Y.Value() == y {
				bw.WriteString(o.String())
			} else {
				bw.WriteByte('.')
			}
		})
		bw.WriteByte('\n')
	})
	return bw.Flush()
}

// walk calls fn for every integer from from to to inclusive, stepping
// toward to. It stops on reaching to, so it cannot overflow past either
// end of the int range.
func walk(from, to int, fn func(int)) {
	step := 1
	if from > to {
		step = -1
	}
	for i := from; ; i += step {
		fn(i)
		if i == to {
			return
		}
	}
}
