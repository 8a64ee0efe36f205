// Package types contains shared move types for the piececube module.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceD Face = "D" // Down
	FaceL Face = "L" // Left
	FaceB Face = "B" // Back
)

// Faces lists the six faces in facelet string order.
var Faces = []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// Valid reports whether f is one of the six face letters.
func (f Face) Valid() bool {
	switch f {
	case FaceU, FaceR, FaceF, FaceD, FaceL, FaceB:
		return true
	}
	return false
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // Half turn
)

// Move represents a single face turn.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// Merge combines two same-face moves into one.
// Returns nil if the faces differ or the moves cancel out completely.
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	// Quarter turns mod 4: 1 = CW, 2 = half, 3 = CCW.
	q := (int(m.Turn) + int(other.Turn)) % 4
	if q < 0 {
		q += 4
	}

	switch q {
	case 0:
		return nil
	case 1:
		return &Move{Face: m.Face, Turn: TurnCW}
	case 2:
		return &Move{Face: m.Face, Turn: Turn180}
	default:
		return &Move{Face: m.Face, Turn: TurnCCW}
	}
}
