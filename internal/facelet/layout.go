package facelet

import "github.com/SeamusWaldron/piececube/internal/cube"

// Position locates a cell in the 3x3x3 grid. X runs left to right, Y down
// to up, Z back to front; each is 0, 1 or 2.
type Position struct {
	X, Y, Z int
}

// MarshalJSON encodes the position as [x, y, z].
func (p Position) MarshalJSON() ([]byte, error) {
	return []byte{'[', byte('0' + p.X), ',', byte('0' + p.Y), ',', byte('0' + p.Z), ']'}, nil
}

var centerPos = [cube.NumFaces]Position{
	cube.U: {1, 2, 1},
	cube.R: {2, 1, 1},
	cube.F: {1, 1, 2},
	cube.D: {1, 0, 1},
	cube.L: {0, 1, 1},
	cube.B: {1, 1, 0},
}

var cornerPos = [cube.NumCorners]Position{
	cube.URF: {2, 2, 2},
	cube.UFL: {0, 2, 2},
	cube.ULB: {0, 2, 0},
	cube.UBR: {2, 2, 0},
	cube.DFR: {2, 0, 2},
	cube.DLF: {0, 0, 2},
	cube.DBL: {0, 0, 0},
	cube.DRB: {2, 0, 0},
}

var edgePos = [cube.NumEdges]Position{
	cube.UR: {2, 2, 1},
	cube.UF: {1, 2, 2},
	cube.UL: {0, 2, 1},
	cube.UB: {1, 2, 0},
	cube.DR: {2, 0, 1},
	cube.DF: {1, 0, 2},
	cube.DL: {0, 0, 1},
	cube.DB: {1, 0, 0},
	cube.FR: {2, 1, 2},
	cube.FL: {0, 1, 2},
	cube.BL: {0, 1, 0},
	cube.BR: {2, 1, 0},
}

var corePos = Position{1, 1, 1}

// place returns the cell shown at (row, col) of face f, reading the face
// row-major as seen from outside the cube with U above F, R, L and B, and
// B above D.
func place(f cube.Face, row, col int) Position {
	switch f {
	case cube.U:
		return Position{col, 2, row}
	case cube.R:
		return Position{2, 2 - row, 2 - col}
	case cube.F:
		return Position{col, 2 - row, 2}
	case cube.D:
		return Position{col, 0, 2 - row}
	case cube.L:
		return Position{0, 2 - row, col}
	case cube.B:
		return Position{2 - col, 2 - row, 0}
	}
	panic("facelet: invalid face")
}

// Facelet string indices of each slot's stickers, in the slot's canonical
// face order (cube.CornerFaces, cube.EdgeFaces).
var (
	cornerFacelet [cube.NumCorners][3]int
	edgeFacelet   [cube.NumEdges][2]int
)

func init() {
	index := make(map[Position]map[cube.Face]int, 26)
	for _, f := range cube.Faces {
		for i := 0; i < 9; i++ {
			p := place(f, i/3, i%3)
			if index[p] == nil {
				index[p] = make(map[cube.Face]int, 3)
			}
			index[p][f] = int(f)*9 + i
		}
	}
	for c := range cornerFacelet {
		for k, f := range cube.CornerFaces[c] {
			cornerFacelet[c][k] = index[cornerPos[c]][f]
		}
	}
	for e := range edgeFacelet {
		for k, f := range cube.EdgeFaces[e] {
			edgeFacelet[e][k] = index[edgePos[e]][f]
		}
	}
}
