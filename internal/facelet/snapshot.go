package facelet

import (
	"encoding/json"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Cell is one of the 27 grid cells and the stickers visible on it.
// Centers carry one color, edges two, corners three and the core none.
type Cell struct {
	Position Position
	Colors   map[cube.Face]Color
}

type cellJSON struct {
	Position Position         `json:"position"`
	Colors   map[string]Color `json:"colors"`
}

// MarshalJSON encodes the cell as {"position":[x,y,z],"colors":{"U":"W"}}.
func (c Cell) MarshalJSON() ([]byte, error) {
	out := cellJSON{Position: c.Position, Colors: make(map[string]Color, len(c.Colors))}
	for f, col := range c.Colors {
		out.Colors[f.String()] = col
	}
	return json.Marshal(out)
}

// Snapshot is the positional view of a cube: centers in face order, then
// corners and edges in slot order, then the core.
type Snapshot []Cell

// NewSnapshot computes the positional view of s.
//
// The sticker shown on slot facelet k of a corner is the piece's face
// (k - ori) mod 3; for an edge it is (k + ori) mod 2. Faces are taken in
// each slot's canonical order from cube.CornerFaces and cube.EdgeFaces.
func NewSnapshot(s *cube.State, scheme Scheme) Snapshot {
	snap := make(Snapshot, 0, 27)

	for _, f := range cube.Faces {
		snap = append(snap, Cell{
			Position: centerPos[f],
			Colors:   map[cube.Face]Color{f: scheme[f]},
		})
	}

	for slot := 0; slot < cube.NumCorners; slot++ {
		piece, ori := s.CP[slot], int(s.CO[slot])
		colors := make(map[cube.Face]Color, 3)
		for k, f := range cube.CornerFaces[slot] {
			colors[f] = scheme[cube.CornerFaces[piece][(k-ori+3)%3]]
		}
		snap = append(snap, Cell{Position: cornerPos[slot], Colors: colors})
	}

	for slot := 0; slot < cube.NumEdges; slot++ {
		piece, ori := s.EP[slot], int(s.EO[slot])
		colors := make(map[cube.Face]Color, 2)
		for k, f := range cube.EdgeFaces[slot] {
			colors[f] = scheme[cube.EdgeFaces[piece][(k+ori)%2]]
		}
		snap = append(snap, Cell{Position: edgePos[slot], Colors: colors})
	}

	return append(snap, Cell{Position: corePos, Colors: map[cube.Face]Color{}})
}

// At returns the cell at p.
func (s Snapshot) At(p Position) (Cell, bool) {
	for _, c := range s {
		if c.Position == p {
			return c, true
		}
	}
	return Cell{}, false
}
