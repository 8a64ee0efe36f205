package facelet

import (
	"strings"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Grid holds the stickers face by face. Each face reads row-major as seen
// from outside the cube:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Grid [cube.NumFaces][9]Color

// NewGrid returns the sticker grid of s.
func NewGrid(s *cube.State, scheme Scheme) Grid {
	return ParseGrid(String(s, scheme))
}

// ParseGrid splits a facelet string into faces. Characters beyond the
// 54th are ignored and missing ones read as Missing.
func ParseGrid(facelets string) Grid {
	var g Grid
	for f := range g {
		for i := range g[f] {
			n := f*9 + i
			if n < len(facelets) {
				g[f][i] = Color(facelets[n])
			} else {
				g[f][i] = Missing
			}
		}
	}
	return g
}

// Face returns the nine stickers of face f.
func (g Grid) Face(f cube.Face) [9]Color {
	return g[f]
}

// String renders the grid as an unfolded net: U on top, then L F R B side
// by side, then D.
func (g Grid) String() string {
	var b strings.Builder
	g.Render(&b, func(c Color) string { return c.String() })
	return b.String()
}

// Render writes the net to b, formatting each sticker with paint.
func (g Grid) Render(b *strings.Builder, paint func(Color) string) {
	row := func(f cube.Face, r int) {
		for col := 0; col < 3; col++ {
			b.WriteString(paint(g[f][r*3+col]))
			b.WriteByte(' ')
		}
	}

	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(cube.U, r)
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		for _, f := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			row(f, r)
		}
		b.WriteByte('\n')
	}
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(cube.D, r)
		b.WriteByte('\n')
	}
}
