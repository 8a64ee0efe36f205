package piececube

import (
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/scramble"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Face is a face letter in move notation.
type Face = types.Face

// Turn is the direction and magnitude of a face turn.
type Turn = types.Turn

// Move is a single face turn.
type Move = types.Move

const (
	FaceU = types.FaceU
	FaceR = types.FaceR
	FaceF = types.FaceF
	FaceD = types.FaceD
	FaceL = types.FaceL
	FaceB = types.FaceB
)

const (
	CW     = types.TurnCW  // Clockwise (90 degrees)
	CCW    = types.TurnCCW // Counter-clockwise (90 degrees)
	Double = types.Turn180 // Half turn (180 degrees)
)

// ParseMove parses a single move such as "R", "U'" or "F2".
func ParseMove(s string) (Move, error) {
	return notation.Parse(s)
}

// ParseMoves parses a whitespace separated move sequence. The first bad
// token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats moves as a space separated sequence.
func FormatMoves(moves []Move) string {
	return notation.Format(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return scramble.Inverse(moves)
}
