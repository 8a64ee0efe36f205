package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{Face: FaceR, Turn: TurnCW}, "R"},
		{Move{Face: FaceU, Turn: TurnCCW}, "U'"},
		{Move{Face: FaceF, Turn: Turn180}, "F2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.move.Notation())
			assert.Equal(t, tt.want, tt.move.String())
		})
	}
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, Move{Face: FaceR, Turn: TurnCCW}, Move{Face: FaceR, Turn: TurnCW}.Inverse())
	assert.Equal(t, Move{Face: FaceR, Turn: TurnCW}, Move{Face: FaceR, Turn: TurnCCW}.Inverse())
	assert.Equal(t, Move{Face: FaceR, Turn: Turn180}, Move{Face: FaceR, Turn: Turn180}.Inverse())
}

func TestMoveIsCancellation(t *testing.T) {
	r := Move{Face: FaceR, Turn: TurnCW}
	assert.True(t, r.IsCancellation(r.Inverse()))
	assert.True(t, Move{Face: FaceR, Turn: Turn180}.IsCancellation(Move{Face: FaceR, Turn: Turn180}))
	assert.False(t, r.IsCancellation(r))
	assert.False(t, r.IsCancellation(Move{Face: FaceL, Turn: TurnCCW}))
}

func TestMoveMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b Turn
		want *Turn
	}{
		{"cw cw is half", TurnCW, TurnCW, ptr(Turn180)},
		{"cw ccw cancels", TurnCW, TurnCCW, nil},
		{"half cw is ccw", Turn180, TurnCW, ptr(TurnCCW)},
		{"half half cancels", Turn180, Turn180, nil},
		{"ccw ccw is half", TurnCCW, TurnCCW, ptr(Turn180)},
		{"half ccw is cw", Turn180, TurnCCW, ptr(TurnCW)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move{Face: FaceU, Turn: tt.a}.Merge(Move{Face: FaceU, Turn: tt.b})
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, got.Turn)
			assert.Equal(t, FaceU, got.Face)
		})
	}

	assert.Nil(t, Move{Face: FaceU, Turn: TurnCW}.Merge(Move{Face: FaceD, Turn: TurnCW}))
}

func TestFaceValid(t *testing.T) {
	for _, f := range Faces {
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, Face("X").Valid())
	assert.False(t, Face("").Valid())
}

func ptr(t Turn) *Turn { return &t }
