package notation

import (
	"strings"

	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Descriptions in plain words, holding the cube white on top and green in
// front.
var descriptions = map[types.Face][3]string{
	// CW, CCW, half
	types.FaceR: {"right side up", "right side down", "right side up twice"},
	types.FaceL: {"left side down", "left side up", "left side down twice"},
	types.FaceU: {"top row left", "top row right", "top row twice"},
	types.FaceD: {"bottom row right", "bottom row left", "bottom row twice"},
	types.FaceF: {"front clockwise", "front anti-clockwise", "front twice"},
	types.FaceB: {"back clockwise", "back anti-clockwise", "back twice"},
}

// Describe returns a plain-words description of m for beginners.
func Describe(m types.Move) string {
	d, ok := descriptions[m.Face]
	if !ok {
		return m.Notation()
	}
	switch m.Turn {
	case types.TurnCW:
		return d[0]
	case types.TurnCCW:
		return d[1]
	case types.Turn180:
		return d[2]
	}
	return m.Notation()
}

// DescribeSequence describes moves as a comma-separated list.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
