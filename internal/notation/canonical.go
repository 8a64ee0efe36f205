// Package notation parses and formats face-turn notation: a face letter
// U, D, L, R, F or B, optionally followed by ' (counter-clockwise) or 2
// (half turn). Sequences are separated by whitespace.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/piececube/pkg/types"
)

// ErrInvalidNotation is returned for a token outside the move grammar.
var ErrInvalidNotation = errors.New("notation: invalid move")

// Parse parses a single move such as R, R' or R2.
func Parse(s string) (types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return types.Move{}, fmt.Errorf("%w: empty", ErrInvalidNotation)
	}

	face := types.Face(s[:1])
	if !face.Valid() {
		return types.Move{}, fmt.Errorf("%w: %q: unknown face", ErrInvalidNotation, s)
	}

	// Extract turn
	turn := types.TurnCW
	switch s[1:] {
	case "":
	case "'":
		turn = types.TurnCCW
	case "2", "2'":
		turn = types.Turn180
	default:
		return types.Move{}, fmt.Errorf("%w: %q: unknown suffix", ErrInvalidNotation, s)
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// ParseSequence parses a whitespace-separated sequence of moves. The first
// invalid token fails the whole sequence and its position is reported.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		move, err := Parse(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// Format formats moves as a space-separated string.
func Format(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
