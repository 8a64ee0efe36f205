package piececube

import (
	"fmt"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/scramble"
)

// Cube is a 3x3 cube held as piece permutation and orientation. The
// centers never move: white up and green front in the standard scheme.
type Cube struct {
	state  *cube.State
	config *config
	moves  []Move
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Cube{state: cube.New(), config: cfg}
}

// FromFacelets builds a cube from a 54-character facelet string in
// U R F D L B order. The string must describe a reachable cube.
func FromFacelets(s string, opts ...Option) (*Cube, error) {
	c := NewCube(opts...)
	st, err := facelet.Decode(s, c.config.scheme)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFacelets, err)
	}
	c.state = st
	return c, nil
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.state.ApplyMove(m)
		if c.config.moveHistory {
			c.moves = append(c.moves, m)
		}
	}
}

// ApplyNotation parses and applies a move sequence such as "R U R' U'".
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Turn turns one face a quarter turn.
func (c *Cube) Turn(face Face, clockwise bool) {
	t := CW
	if !clockwise {
		t = CCW
	}
	c.Apply(Move{Face: face, Turn: t})
}

// Scramble applies n random moves and returns them.
func (c *Cube) Scramble(n int, opts ...scramble.Option) []Move {
	moves := scramble.New(opts...).Moves(n)
	c.Apply(moves...)
	return moves
}

// IsSolved returns true if every piece is home and oriented.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// Reset returns the cube to solved and clears the history.
func (c *Cube) Reset() {
	c.state = cube.New()
	c.moves = nil
}

// Clone returns an independent copy.
func (c *Cube) Clone() *Cube {
	clone := &Cube{state: c.state.Clone(), config: c.config}
	if c.moves != nil {
		clone.moves = append([]Move(nil), c.moves...)
	}
	return clone
}

// State returns a copy of the piece state.
func (c *Cube) State() *cube.State {
	return c.state.Clone()
}

// Moves returns the applied moves. It is empty when history is disabled.
func (c *Cube) Moves() []Move {
	return append([]Move(nil), c.moves...)
}

// Facelets returns the 54-character facelet string.
func (c *Cube) Facelets() string {
	return facelet.String(c.state, c.config.scheme)
}

// Snapshot returns the 27 cells with their visible sticker colors.
func (c *Cube) Snapshot() facelet.Snapshot {
	return facelet.NewSnapshot(c.state, c.config.scheme)
}

// Grid returns the stickers face by face.
func (c *Cube) Grid() facelet.Grid {
	return facelet.NewGrid(c.state, c.config.scheme)
}

// String returns the unfolded net.
func (c *Cube) String() string {
	return c.Grid().String()
}
