package scramble

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

func TestScrambleLengthAndAlphabet(t *testing.T) {
	s := New(WithSeed(1))
	st := cube.New()
	moves := s.Scramble(st, 25)
	require.Len(t, moves, 25)
	for _, m := range moves {
		assert.True(t, m.Face.Valid())
		assert.Contains(t, []types.Turn{types.TurnCW, types.TurnCCW}, m.Turn)
	}
	assert.NoError(t, st.Verify())
}

func TestScrambleZero(t *testing.T) {
	st := cube.New()
	assert.Empty(t, New().Scramble(st, 0))
	assert.True(t, st.IsSolved())
}

func TestSeedIsReproducible(t *testing.T) {
	a := New(WithSeed(42)).Moves(30)
	b := New(WithSeed(42)).Moves(30)
	assert.Equal(t, a, b)

	c := New(WithRand(rand.New(rand.NewPCG(1, 2)))).Moves(30)
	d := New(WithRand(rand.New(rand.NewPCG(1, 2)))).Moves(30)
	assert.Equal(t, c, d)
}

func TestAvoidRepeats(t *testing.T) {
	moves := New(WithSeed(7), WithAvoidRepeats(true)).Moves(500)
	for i := 1; i < len(moves); i++ {
		require.NotEqual(t, moves[i-1].Face, moves[i].Face, "move %d repeats its face", i)
	}
}

func TestAvoidRepeatsDrawsEveryOtherFace(t *testing.T) {
	next := map[types.Face]map[types.Face]bool{}
	moves := New(WithSeed(5), WithAvoidRepeats(true)).Moves(2000)
	for i := 1; i < len(moves); i++ {
		prev := moves[i-1].Face
		if next[prev] == nil {
			next[prev] = map[types.Face]bool{}
		}
		next[prev][moves[i].Face] = true
	}
	require.Len(t, next, len(types.Faces))
	for f, followers := range next {
		assert.Len(t, followers, len(types.Faces)-1, "faces after %s", f)
		assert.False(t, followers[f])
	}
}

func TestUsesAllFacesAndDirections(t *testing.T) {
	seen := map[types.Move]bool{}
	for _, m := range New(WithSeed(3)).Moves(1000) {
		seen[m] = true
	}
	assert.Len(t, seen, 12)
}

func TestInverseUndoesScramble(t *testing.T) {
	st := cube.New()
	moves := New(WithSeed(11)).Scramble(st, 40)
	require.False(t, st.IsSolved())

	st.ApplyMoves(Inverse(moves))
	assert.True(t, st.IsSolved())
}

func TestInverseOrder(t *testing.T) {
	in := []types.Move{
		{Face: types.FaceR, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.Turn180},
		{Face: types.FaceF, Turn: types.TurnCCW},
	}
	want := []types.Move{
		{Face: types.FaceF, Turn: types.TurnCW},
		{Face: types.FaceU, Turn: types.Turn180},
		{Face: types.FaceR, Turn: types.TurnCCW},
	}
	assert.Equal(t, want, Inverse(in))
}
