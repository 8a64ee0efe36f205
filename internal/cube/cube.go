// Package cube provides the 3x3 cubie model: corner and edge permutation
// vectors, each paired with an orientation vector, and the face-turn engine
// that updates them.
package cube

// Face represents a cube face. The numbering follows facelet string order.
type Face int

const (
	U Face = 0 // Up
	R Face = 1 // Right
	F Face = 2 // Front
	D Face = 3 // Down
	L Face = 4 // Left
	B Face = 5 // Back
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

// Faces lists all faces in facelet string order.
var Faces = [NumFaces]Face{U, R, F, D, L, B}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case R:
		return "R"
	case F:
		return "F"
	case D:
		return "D"
	case L:
		return "L"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether f names one of the six faces.
func (f Face) Valid() bool {
	return f >= U && f <= B
}

// ParseFace converts a face letter to a Face.
func ParseFace(s string) (Face, bool) {
	switch s {
	case "U":
		return U, true
	case "R":
		return R, true
	case "F":
		return F, true
	case "D":
		return D, true
	case "L":
		return L, true
	case "B":
		return B, true
	default:
		return 0, false
	}
}

// Corner identifies a corner slot or corner piece.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner slots.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) < NumCorners {
		return cornerNames[c]
	}
	return "?"
}

// CornerFaces lists each corner's faces, starting with its U or D face and
// continuing clockwise around the corner.
var CornerFaces = [NumCorners][3]Face{
	URF: {U, R, F},
	UFL: {U, F, L},
	ULB: {U, L, B},
	UBR: {U, B, R},
	DFR: {D, F, R},
	DLF: {D, L, F},
	DBL: {D, B, L},
	DRB: {D, R, B},
}

// Edge identifies an edge slot or edge piece.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge slots.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) < NumEdges {
		return edgeNames[e]
	}
	return "?"
}

// EdgeFaces lists each edge's two faces. The first face is the reference
// facelet used for edge orientation.
var EdgeFaces = [NumEdges][2]Face{
	UR: {U, R},
	UF: {U, F},
	UL: {U, L},
	UB: {U, B},
	DR: {D, R},
	DF: {D, F},
	DL: {D, L},
	DB: {D, B},
	FR: {F, R},
	FL: {F, L},
	BL: {B, L},
	BR: {B, R},
}
