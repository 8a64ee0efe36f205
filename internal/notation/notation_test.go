package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/piececube/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want types.Move
	}{
		{"R", types.Move{Face: types.FaceR, Turn: types.TurnCW}},
		{"U'", types.Move{Face: types.FaceU, Turn: types.TurnCCW}},
		{"F2", types.Move{Face: types.FaceF, Turn: types.Turn180}},
		{"B2'", types.Move{Face: types.FaceB, Turn: types.Turn180}},
		{" D ", types.Move{Face: types.FaceD, Turn: types.TurnCW}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "X", "r", "R3", "R''", "M", "Rw"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidNotation)
		})
	}
}

func TestParseSequenceIsStrict(t *testing.T) {
	moves, err := ParseSequence("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", Format(moves))

	_, err = ParseSequence("R U X U'")
	require.ErrorIs(t, err, ErrInvalidNotation)
	assert.Contains(t, err.Error(), "token 3")

	moves, err = ParseSequence("   ")
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestFormatRoundTrip(t *testing.T) {
	in := "F2 L' D B2 U R'"
	moves, err := ParseSequence(in)
	require.NoError(t, err)
	assert.Equal(t, in, Format(moves))
	assert.Equal(t, "", Format(nil))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "right side up", Describe(types.Move{Face: types.FaceR, Turn: types.TurnCW}))
	assert.Equal(t, "top row right", Describe(types.Move{Face: types.FaceU, Turn: types.TurnCCW}))
	assert.Equal(t, "front twice", Describe(types.Move{Face: types.FaceF, Turn: types.Turn180}))
	assert.Equal(t, "left side down, back anti-clockwise", DescribeSequence([]types.Move{
		{Face: types.FaceL, Turn: types.TurnCW},
		{Face: types.FaceB, Turn: types.TurnCCW},
	}))
}
