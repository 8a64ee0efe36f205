package cube

import "github.com/SeamusWaldron/piececube/pkg/types"

// ApplyMove applies a types.Move to the state.
// A move with an unknown face is a programming error and panics.
func (s *State) ApplyMove(m types.Move) {
	face, ok := FromTypesFace(m.Face)
	if !ok {
		panic("cube: invalid face " + string(m.Face))
	}
	switch m.Turn {
	case types.TurnCW:
		s.Apply(face, true)
	case types.TurnCCW:
		s.Apply(face, false)
	case types.Turn180:
		s.Half(face)
	default:
		panic("cube: invalid turn for " + string(m.Face))
	}
}

// ApplyMoves applies a sequence of moves to the state.
func (s *State) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		s.ApplyMove(m)
	}
}

// FromTypesFace converts types.Face to cube.Face.
func FromTypesFace(f types.Face) (Face, bool) {
	return ParseFace(string(f))
}

// TypesFace converts a cube.Face to types.Face.
func (f Face) TypesFace() types.Face {
	return types.Face(f.String())
}
