package facelet

import (
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

const solved = "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

func TestSolvedFaceletString(t *testing.T) {
	assert.Equal(t, solved, String(cube.New(), Standard))
}

func TestQuarterTurnFacelets(t *testing.T) {
	tests := []struct {
		face cube.Face
		want string
	}{
		{cube.U, "WWWWWWWWW" + "BBBRRRRRR" + "RRRGGGGGG" + "YYYYYYYYY" + "GGGOOOOOO" + "OOOBBBBBB"},
		{cube.R, "WWGWWGWWG" + "RRRRRRRRR" + "GGYGGYGGY" + "YYBYYBYYB" + "OOOOOOOOO" + "WBBWBBWBB"},
		{cube.F, "WWWWWWOOO" + "WRRWRRWRR" + "GGGGGGGGG" + "RRRYYYYYY" + "OOYOOYOOY" + "BBBBBBBBB"},
	}
	for _, tt := range tests {
		t.Run(tt.face.String(), func(t *testing.T) {
			s := cube.New()
			s.Apply(tt.face, true)
			assert.Equal(t, tt.want, String(s, Standard))
		})
	}
}

// Sticker tables of the two-phase solver, written out by hand.
var (
	refCornerFacelet = [8][3]string{
		{"U9", "R1", "F3"}, {"U7", "F1", "L3"}, {"U1", "L1", "B3"}, {"U3", "B1", "R3"},
		{"D3", "F9", "R7"}, {"D1", "L9", "F7"}, {"D7", "B9", "L7"}, {"D9", "R9", "B7"},
	}
	refEdgeFacelet = [12][2]string{
		{"U6", "R2"}, {"U8", "F2"}, {"U4", "L2"}, {"U2", "B2"},
		{"D6", "R8"}, {"D2", "F8"}, {"D4", "L8"}, {"D8", "B8"},
		{"F6", "R4"}, {"F4", "L6"}, {"B6", "L4"}, {"B4", "R6"},
	}
	refCornerColor = [8]string{"WRG", "WGO", "WOB", "WBR", "YGR", "YOG", "YBO", "YRB"}
	refEdgeColor   = [12]string{"WR", "WG", "WO", "WB", "YR", "YG", "YO", "YB", "GR", "GO", "BO", "BR"}
)

func refIndex(name string) int {
	return strings.IndexByte("URFDLB", name[0])*9 + int(name[1]-'1')
}

func referenceFacelets(s *cube.State) string {
	b := []byte(solved)
	for i := 0; i < cube.NumCorners; i++ {
		piece, ori := s.CP[i], int(s.CO[i])
		for n := 0; n < 3; n++ {
			b[refIndex(refCornerFacelet[i][(n+ori)%3])] = refCornerColor[piece][n]
		}
	}
	for i := 0; i < cube.NumEdges; i++ {
		piece, ori := s.EP[i], int(s.EO[i])
		for n := 0; n < 2; n++ {
			b[refIndex(refEdgeFacelet[i][(n+ori)%2])] = refEdgeColor[piece][n]
		}
	}
	return string(b)
}

func TestEncodeMatchesReferenceTables(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 99))
	s := cube.New()
	for i := 0; i < 300; i++ {
		s.Apply(cube.Faces[rng.IntN(cube.NumFaces)], rng.IntN(2) == 0)
		require.Equal(t, referenceFacelets(s), String(s, Standard), "after %d turns", i+1)
	}
}

func TestEncodeKeepsColorCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	s := cube.New()
	for i := 0; i < 50; i++ {
		s.Apply(cube.Faces[rng.IntN(cube.NumFaces)], rng.IntN(2) == 0)
		str := String(s, Standard)
		require.NoError(t, Validate(str, Standard))
		for _, c := range Standard {
			assert.Equal(t, 9, strings.Count(str, c.String()))
		}
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	s := cube.New()
	for i := 0; i < 100; i++ {
		s.Apply(cube.Faces[rng.IntN(cube.NumFaces)], rng.IntN(2) == 0)
		got, err := Decode(String(s, Standard), Standard)
		require.NoError(t, err)
		require.Equal(t, *s, *got, "after %d turns", i+1)
	}
}

func TestDecodeSolved(t *testing.T) {
	s, err := Decode(solved, Standard)
	require.NoError(t, err)
	assert.True(t, s.IsSolved())
}

func withSwaps(pairs ...[2]int) string {
	b := []byte(solved)
	for _, p := range pairs {
		b[p[0]], b[p[1]] = b[p[1]], b[p[0]]
	}
	return string(b)
}

func TestValidateAndDecodeErrors(t *testing.T) {
	twisted := []byte(solved)
	twisted[8], twisted[9], twisted[20] = 'G', 'W', 'R'

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"too short", solved[:53], ErrLength},
		{"too long", solved + "W", ErrLength},
		{"unknown color", "Z" + solved[1:], ErrUnknownColor},
		{"missing marker", "X" + solved[1:], ErrUnknownColor},
		{"color count", "R" + solved[1:], ErrColorCount},
		{"swapped centers", withSwaps([2]int{4, 13}), ErrCenters},
		{"corner without U or D sticker", withSwaps([2]int{8, 10}), ErrCornerPiece},
		{"impossible edge", withSwaps([2]int{19, 12}), ErrEdgePiece},
		{"U and D stickers swapped between corners", withSwaps([2]int{8, 29}), ErrCornerPiece},
		{"twisted corner", string(twisted), cube.ErrTwist},
		{"flipped edge", withSwaps([2]int{7, 19}), cube.ErrFlip},
		{"two edges swapped", withSwaps([2]int{10, 19}), cube.ErrParity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input, Standard)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSnapshotShape(t *testing.T) {
	s := cube.New()
	s.Apply(cube.R, true)
	s.Apply(cube.U, false)
	snap := NewSnapshot(s, Standard)
	require.Len(t, snap, 27)

	sizes := map[int]int{}
	seen := map[Position]bool{}
	for _, c := range snap {
		sizes[len(c.Colors)]++
		assert.False(t, seen[c.Position], "duplicate position %v", c.Position)
		seen[c.Position] = true
	}
	assert.Equal(t, map[int]int{0: 1, 1: 6, 2: 12, 3: 8}, sizes)

	core, ok := snap.At(Position{1, 1, 1})
	require.True(t, ok)
	assert.Empty(t, core.Colors)
}

func TestSnapshotCornerColors(t *testing.T) {
	s := cube.New()
	s.Apply(cube.R, true)
	snap := NewSnapshot(s, Standard)

	// DFR carried up into URF: its yellow sticker faces front.
	urf, ok := snap.At(Position{2, 2, 2})
	require.True(t, ok)
	assert.Equal(t, map[cube.Face]Color{cube.U: Green, cube.R: Red, cube.F: Yellow}, urf.Colors)
}

func TestSnapshotJSON(t *testing.T) {
	data, err := json.Marshal(NewSnapshot(cube.New(), Standard))
	require.NoError(t, err)

	var records []struct {
		Position [3]int           `json:"position"`
		Colors   map[string]string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 27)

	assert.Equal(t, [3]int{1, 2, 1}, records[0].Position)
	assert.Equal(t, map[string]string{"U": "W"}, records[0].Colors)
	assert.Equal(t, [3]int{2, 2, 2}, records[6].Position)
	assert.Equal(t, map[string]string{"U": "W", "R": "R", "F": "G"}, records[6].Colors)
	assert.Equal(t, [3]int{1, 1, 1}, records[26].Position)
	assert.Empty(t, records[26].Colors)
}

func TestEncodeMarksMissingStickers(t *testing.T) {
	snap := NewSnapshot(cube.New(), Standard)
	snap = snap[6:] // drop centers
	got := Encode(snap)
	assert.Equal(t, byte('X'), got[4])
	assert.Equal(t, 6, strings.Count(got, "X"))
}

func TestGridString(t *testing.T) {
	g := NewGrid(cube.New(), Standard)
	assert.Equal(t, [9]Color{White, White, White, White, White, White, White, White, White}, g.Face(cube.U))

	lines := strings.Split(strings.TrimRight(g.String(), "\n"), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "      W W W ", lines[0])
	assert.Equal(t, "O O O G G G R R R B B B ", lines[3])
	assert.Equal(t, "      Y Y Y ", lines[8])
}

func TestSchemeLookup(t *testing.T) {
	f, ok := Standard.Face(Green)
	require.True(t, ok)
	assert.Equal(t, cube.F, f)

	f, ok = Standard.FaceByName("orange")
	require.True(t, ok)
	assert.Equal(t, cube.L, f)

	_, ok = Standard.Face(Missing)
	assert.False(t, ok)
}

func TestDefinition(t *testing.T) {
	def, err := Definition(solved, Standard)
	require.NoError(t, err)
	assert.Equal(t, "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB", def)

	s := cube.New()
	s.Apply(cube.R, true)
	str := String(s, Standard)
	def, err = Definition(str, Standard)
	require.NoError(t, err)
	assert.Equal(t, "UUFUUFUUF", def[:9])

	back, err := FromDefinition(def, Standard)
	require.NoError(t, err)
	assert.Equal(t, str, back)

	_, err = Definition("W", Standard)
	assert.ErrorIs(t, err, ErrLength)
	_, err = FromDefinition(strings.Repeat("Q", Length), Standard)
	assert.ErrorIs(t, err, ErrUnknownColor)
}
