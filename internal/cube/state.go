package cube

import (
	"fmt"
	"strings"
)

// State represents a 3x3 cube as cubies.
//
// Slot i holds corner piece CP[i] twisted CO[i] times clockwise, and edge
// piece EP[i] flipped EO[i] times. State is a comparable value: == compares
// every vector and a State may be used as a map key.
type State struct {
	CP [NumCorners]Corner
	CO [NumCorners]uint8
	EP [NumEdges]Edge
	EO [NumEdges]uint8
}

// New creates a solved cube: identity permutations, zero orientation.
func New() *State {
	s := &State{}
	for i := range s.CP {
		s.CP[i] = Corner(i)
	}
	for i := range s.EP {
		s.EP[i] = Edge(i)
	}
	return s
}

// Clone creates a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// IsSolved returns true if every piece is home and unrotated.
func (s *State) IsSolved() bool {
	for i := 0; i < NumCorners; i++ {
		if s.CP[i] != Corner(i) || s.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < NumEdges; i++ {
		if s.EP[i] != Edge(i) || s.EO[i] != 0 {
			return false
		}
	}
	return true
}

// Twist returns the corner orientation sum mod 3.
func (s *State) Twist() int {
	sum := 0
	for _, o := range s.CO {
		sum += int(o)
	}
	return sum % 3
}

// Flip returns the edge orientation sum mod 2.
func (s *State) Flip() int {
	sum := 0
	for _, o := range s.EO {
		sum += int(o)
	}
	return sum % 2
}

// CornerParity returns 0 for an even corner permutation, 1 for odd.
func (s *State) CornerParity() int {
	return parity(s.CP[:])
}

// EdgeParity returns 0 for an even edge permutation, 1 for odd.
func (s *State) EdgeParity() int {
	return parity(s.EP[:])
}

func parity[T Corner | Edge](perm []T) int {
	inversions := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				inversions++
			}
		}
	}
	return inversions % 2
}

// String returns the four vectors on one line each.
func (s *State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cp: %v\n", s.CP)
	fmt.Fprintf(&b, "co: %v\n", s.CO)
	fmt.Fprintf(&b, "ep: %v\n", s.EP)
	fmt.Fprintf(&b, "eo: %v\n", s.EO)
	return b.String()
}
