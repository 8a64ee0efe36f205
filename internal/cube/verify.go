package cube

import (
	"errors"
	"fmt"
)

// Errors returned by Verify.
var (
	ErrPermutation = errors.New("cube: permutation is not a bijection")
	ErrOrientation = errors.New("cube: orientation out of range")
	ErrTwist       = errors.New("cube: corner twist sum is not 0 mod 3")
	ErrFlip        = errors.New("cube: edge flip sum is not 0 mod 2")
	ErrParity      = errors.New("cube: corner and edge permutation parity differ")
)

// Verify checks that s is a state a physical cube can reach by face turns.
// Move applications preserve these invariants; states built from external
// data must be verified before use.
func (s *State) Verify() error {
	var seenC [NumCorners]bool
	for i, c := range s.CP {
		if int(c) >= NumCorners || seenC[c] {
			return fmt.Errorf("%w: corner slot %d holds %d", ErrPermutation, i, c)
		}
		seenC[c] = true
		if s.CO[i] > 2 {
			return fmt.Errorf("%w: corner slot %d has orientation %d", ErrOrientation, i, s.CO[i])
		}
	}

	var seenE [NumEdges]bool
	for i, e := range s.EP {
		if int(e) >= NumEdges || seenE[e] {
			return fmt.Errorf("%w: edge slot %d holds %d", ErrPermutation, i, e)
		}
		seenE[e] = true
		if s.EO[i] > 1 {
			return fmt.Errorf("%w: edge slot %d has orientation %d", ErrOrientation, i, s.EO[i])
		}
	}

	if t := s.Twist(); t != 0 {
		return fmt.Errorf("%w (got %d)", ErrTwist, t)
	}
	if f := s.Flip(); f != 0 {
		return fmt.Errorf("%w (got %d)", ErrFlip, f)
	}
	if s.CornerParity() != s.EdgeParity() {
		return ErrParity
	}
	return nil
}
