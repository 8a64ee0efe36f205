package protocol

import (
	"fmt"

	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// RotationMove converts a rotation to a face turn. The turned face is the
// one whose center carries the rotation's color in scheme.
func RotationMove(rot Rotation, scheme facelet.Scheme) (types.Move, error) {
	f, ok := scheme.FaceByName(rot.Color)
	if !ok {
		return types.Move{}, fmt.Errorf("protocol: color %q is not in the scheme", rot.Color)
	}
	turn := types.TurnCCW
	if rot.Clockwise {
		turn = types.TurnCW
	}
	return types.Move{Face: f.TypesFace(), Turn: turn}, nil
}

// RotationMoves converts rotations to face turns, merging adjacent turns
// of the same face (R R becomes R2, R R' vanishes).
func RotationMoves(rots []Rotation, scheme facelet.Scheme) ([]types.Move, error) {
	moves := make([]types.Move, 0, len(rots))
	for _, r := range rots {
		m, err := RotationMove(r, scheme)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return MergeMoves(moves), nil
}

// MergeMoves merges adjacent same-face moves.
func MergeMoves(moves []types.Move) []types.Move {
	result := make([]types.Move, 0, len(moves))
	for _, move := range moves {
		if n := len(result); n > 0 && result[n-1].Face == move.Face {
			if merged := result[n-1].Merge(move); merged != nil {
				result[n-1] = *merged
			} else {
				result = result[:n-1]
			}
			continue
		}
		result = append(result, move)
	}
	return result
}
