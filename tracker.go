package piececube

import (
	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/search"
)

// Tracker wraps a Cube and reports when it enters a goal state.
type Tracker struct {
	cube    *Cube
	goals   []search.Goal
	reached []bool

	onGoal   func(name string)
	onSolved func()
}

// NewTracker creates a tracker starting from a solved cube. It watches the
// D cross and the solved cube.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		cube:  NewCube(opts...),
		goals: []search.Goal{search.Cross(cube.D), search.Solved()},
	}
	t.refresh()
	return t
}

// OnGoal sets a callback that fires with the goal name whenever a move
// takes the cube into a goal it was not in.
func (t *Tracker) OnGoal(cb func(name string)) {
	t.onGoal = cb
}

// OnSolved sets a callback that fires whenever a move solves the cube.
func (t *Tracker) OnSolved(cb func()) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved cube.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.refresh()
}

// ApplyMove applies a move and fires callbacks for goals entered.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.Apply(m)
	for i, g := range t.goals {
		now := g.Reached(t.cube.state)
		if now && !t.reached[i] {
			if t.onGoal != nil {
				t.onGoal(g.Name)
			}
			if g.Name == "solved" && t.onSolved != nil {
				t.onSolved()
			}
		}
		t.reached[i] = now
	}
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Reached returns the names of goals the cube is in now.
func (t *Tracker) Reached() []string {
	var names []string
	for i, g := range t.goals {
		if t.reached[i] {
			names = append(names, g.Name)
		}
	}
	return names
}

// Cube returns a copy of the tracked cube.
func (t *Tracker) Cube() *Cube {
	return t.cube.Clone()
}

// IsSolved returns true if the tracked cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

func (t *Tracker) refresh() {
	t.reached = make([]bool, len(t.goals))
	for i, g := range t.goals {
		t.reached[i] = g.Reached(t.cube.state)
	}
}
