package search

import (
	"fmt"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Goal is a predicate on cube states plus the key that identifies states
// the predicate cannot tell apart. Search never revisits a key.
type Goal struct {
	Name    string
	Reached func(*cube.State) bool
	// Key projects a state onto what the goal depends on. Nil means the
	// whole state.
	Key func(*cube.State) any
}

func (g Goal) key(s *cube.State) any {
	if g.Key == nil {
		return *s
	}
	return g.Key(s)
}

// Solved is the goal of a fully solved cube.
func Solved() Goal {
	return Goal{
		Name:    "solved",
		Reached: (*cube.State).IsSolved,
	}
}

// Cross is the goal of the four edges around face f sitting home with
// their orientation intact.
func Cross(f cube.Face) Goal {
	var edges [4]cube.Edge
	n := 0
	for e, faces := range cube.EdgeFaces {
		if faces[0] == f || faces[1] == f {
			edges[n] = cube.Edge(e)
			n++
		}
	}

	return Goal{
		Name: "cross-" + f.String(),
		Reached: func(s *cube.State) bool {
			for _, e := range edges {
				if s.EP[e] != e || s.EO[e] != 0 {
					return false
				}
			}
			return true
		},
		Key: func(s *cube.State) any {
			// slot and orientation of each cross edge
			var k [8]uint8
			for slot, piece := range s.EP {
				for i, e := range edges {
					if piece == e {
						k[i] = uint8(slot)
						k[4+i] = s.EO[slot]
					}
				}
			}
			return k
		},
	}
}

// GoalByName resolves "solved" or "cross" (the D cross).
func GoalByName(name string) (Goal, error) {
	switch name {
	case "solved":
		return Solved(), nil
	case "cross":
		return Cross(cube.D), nil
	}
	return Goal{}, fmt.Errorf("search: unknown goal %q", name)
}
