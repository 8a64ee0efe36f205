package facelet

import (
	"strings"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Length is the number of stickers in a facelet string.
const Length = 54

// Encode walks faces U, R, F, D, L, B and emits the color each face's cell
// shows, in the two-phase solver's facelet order. A sticker missing from
// snap is written as 'X'.
func Encode(snap Snapshot) string {
	byPos := make(map[Position]map[cube.Face]Color, len(snap))
	for _, c := range snap {
		byPos[c.Position] = c.Colors
	}

	var b strings.Builder
	b.Grow(Length)
	for _, f := range cube.Faces {
		for i := 0; i < 9; i++ {
			col, ok := byPos[place(f, i/3, i%3)][f]
			if !ok {
				col = Missing
			}
			b.WriteByte(byte(col))
		}
	}
	return b.String()
}

// String returns the facelet string of s.
func String(s *cube.State, scheme Scheme) string {
	return Encode(NewSnapshot(s, scheme))
}
