package facelet

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/piececube/internal/cube"
)

// Errors returned by Validate and Decode.
var (
	ErrLength       = errors.New("facelet: string must be 54 characters")
	ErrUnknownColor = errors.New("facelet: unknown color")
	ErrColorCount   = errors.New("facelet: each color must appear 9 times")
	ErrCenters      = errors.New("facelet: center does not match its face")
	ErrCornerPiece  = errors.New("facelet: no corner has these colors")
	ErrEdgePiece    = errors.New("facelet: no edge has these colors")
)

// Validate performs the checks a solver needs before it can read s: length,
// alphabet, color counts and centers. It does not check reachability.
func Validate(s string, scheme Scheme) error {
	if len(s) != Length {
		return fmt.Errorf("%w (got %d)", ErrLength, len(s))
	}

	var counts [cube.NumFaces]int
	for i := 0; i < Length; i++ {
		f, ok := scheme.Face(Color(s[i]))
		if !ok {
			return fmt.Errorf("%w %q at %d", ErrUnknownColor, s[i], i)
		}
		counts[f]++
	}
	for f, n := range counts {
		if n != 9 {
			return fmt.Errorf("%w: %s appears %d times", ErrColorCount, scheme[f], n)
		}
	}

	for _, f := range cube.Faces {
		if got := Color(s[int(f)*9+4]); got != scheme[f] {
			return fmt.Errorf("%w: %s center is %s, want %s", ErrCenters, f, got, scheme[f])
		}
	}
	return nil
}

// Decode rebuilds the cubie state shown by facelet string s. The result is
// verified to be reachable by face turns.
func Decode(s string, scheme Scheme) (*cube.State, error) {
	if err := Validate(s, scheme); err != nil {
		return nil, err
	}

	st := &cube.State{}
	up, down := scheme[cube.U], scheme[cube.D]

	for slot := 0; slot < cube.NumCorners; slot++ {
		idx := cornerFacelet[slot]
		ori := 0
		for ori < 3 {
			if c := Color(s[idx[ori]]); c == up || c == down {
				break
			}
			ori++
		}
		if ori == 3 {
			return nil, fmt.Errorf("%w: slot %s has no U/D sticker", ErrCornerPiece, cube.Corner(slot))
		}

		c1, c2 := Color(s[idx[(ori+1)%3]]), Color(s[idx[(ori+2)%3]])
		found := false
		for piece := 0; piece < cube.NumCorners; piece++ {
			pf := cube.CornerFaces[piece]
			if scheme[pf[1]] == c1 && scheme[pf[2]] == c2 {
				if Color(s[idx[ori]]) != scheme[pf[0]] {
					return nil, fmt.Errorf("%w: slot %s shows %s where %s belongs", ErrCornerPiece,
						cube.Corner(slot), Color(s[idx[ori]]), scheme[pf[0]])
				}
				st.CP[slot] = cube.Corner(piece)
				st.CO[slot] = uint8(ori)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: slot %s", ErrCornerPiece, cube.Corner(slot))
		}
	}

	for slot := 0; slot < cube.NumEdges; slot++ {
		idx := edgeFacelet[slot]
		a, b := Color(s[idx[0]]), Color(s[idx[1]])
		found := false
		for piece := 0; piece < cube.NumEdges; piece++ {
			pf := cube.EdgeFaces[piece]
			switch {
			case scheme[pf[0]] == a && scheme[pf[1]] == b:
				st.EP[slot], st.EO[slot] = cube.Edge(piece), 0
				found = true
			case scheme[pf[0]] == b && scheme[pf[1]] == a:
				st.EP[slot], st.EO[slot] = cube.Edge(piece), 1
				found = true
			}
			if found {
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: slot %s", ErrEdgePiece, cube.Edge(slot))
		}
	}

	if err := st.Verify(); err != nil {
		return nil, fmt.Errorf("facelet: unreachable cube: %w", err)
	}
	return st, nil
}
