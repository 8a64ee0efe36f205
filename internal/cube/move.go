package cube

// faceTurn describes one clockwise quarter turn of a face.
//
// The value at corners[i] moves to corners[i+1] and gains cornerDelta[i+1];
// edges likewise. Deltas are indexed by the position a piece arrives at.
type faceTurn struct {
	corners     [4]Corner
	cornerDelta [4]uint8
	edges       [4]Edge
	edgeDelta   [4]uint8
}

// turns holds the clockwise quarter turn of every face, as seen looking at
// that face. U and D never change orientation. F, B, L and R twist the four
// corners they move. Only F and B flip edges.
var turns = [NumFaces]faceTurn{
	U: {
		corners: [4]Corner{URF, UFL, ULB, UBR},
		edges:   [4]Edge{UR, UF, UL, UB},
	},
	R: {
		corners:     [4]Corner{URF, UBR, DRB, DFR},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edges:       [4]Edge{UR, BR, DR, FR},
	},
	F: {
		corners:     [4]Corner{UFL, URF, DFR, DLF},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edges:       [4]Edge{UF, FR, DF, FL},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
	D: {
		corners: [4]Corner{DFR, DRB, DBL, DLF},
		edges:   [4]Edge{DF, DR, DB, DL},
	},
	L: {
		corners:     [4]Corner{ULB, UFL, DLF, DBL},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edges:       [4]Edge{UL, FL, DL, BL},
	},
	B: {
		corners:     [4]Corner{UBR, ULB, DBL, DRB},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edges:       [4]Edge{UB, BL, DB, BR},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
}

// Apply turns face f a quarter turn, clockwise when viewed from outside that
// face if clockwise is set. Apply panics if f is not a valid face.
func (s *State) Apply(f Face, clockwise bool) {
	t := &turns[f]
	turn(s.CP[:], s.CO[:], slots(t.corners), t.cornerDelta, 3, clockwise)
	turn(s.EP[:], s.EO[:], slots(t.edges), t.edgeDelta, 2, clockwise)
}

// Half applies a half turn of face f.
func (s *State) Half(f Face) {
	s.Apply(f, true)
	s.Apply(f, true)
}

// turn moves one 4-cycle of pieces together with their orientations.
func turn[P any](perm []P, orient []uint8, idx [4]int, delta [4]uint8, mod uint8, clockwise bool) {
	if clockwise {
		cycle4(perm, idx, true)
		cycle4(orient, idx, true)
		for i, slot := range idx {
			orient[slot] = ShiftOrientation(orient[slot], delta[i], mod)
		}
		return
	}

	// Undo the clockwise step: drop the delta gained at the current
	// position, then move back one place.
	for i, slot := range idx {
		orient[slot] = ShiftOrientation(orient[slot], (mod-delta[i])%mod, mod)
	}
	cycle4(perm, idx, false)
	cycle4(orient, idx, false)
}

func slots[T Corner | Edge](c [4]T) [4]int {
	return [4]int{int(c[0]), int(c[1]), int(c[2]), int(c[3])}
}
