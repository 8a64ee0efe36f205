package piececube

import (
	"errors"
	"strings"
	"testing"

	"github.com/SeamusWaldron/piececube/internal/protocol"
	"github.com/SeamusWaldron/piececube/internal/scramble"
)

const solvedFacelets = "WWWWWWWWWRRRRRRRRRGGGGGGGGGYYYYYYYYYOOOOOOOOOBBBBBBBBB"

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if got := c.Facelets(); got != solvedFacelets {
		t.Errorf("Facelets() = %s, want %s", got, solvedFacelets)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range []Face{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB} {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c.Turn(face, true)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPermTwiceIsIdentity(t *testing.T) {
	c := NewCube()
	c.Apply(TPerm...)
	if c.IsSolved() {
		t.Error("T-perm should change the cube")
	}
	c.Apply(TPerm...)
	if !c.IsSolved() {
		t.Error("T-perm twice should return to solved")
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	if got := FormatMoves(c.Moves()); got != "R U R' U'" {
		t.Errorf("Moves() = %q", got)
	}

	c = NewCube()
	err := c.ApplyNotation("R U X")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
	if !c.IsSolved() || len(c.Moves()) != 0 {
		t.Error("A bad sequence must not be partly applied")
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("F2")
	if err != nil {
		t.Fatal(err)
	}
	if m != F2 {
		t.Errorf("ParseMove(F2) = %v", m)
	}
	if _, err := ParseMove("f"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation for lower case, got %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := NewCube()
	c.Apply(R)
	clone := c.Clone()
	clone.Apply(RPrime)

	if c.IsSolved() {
		t.Error("Original should be unaffected by clone moves")
	}
	if !clone.IsSolved() {
		t.Error("Clone should be solved after R'")
	}
	if len(c.Moves()) != 1 {
		t.Errorf("Original history length = %d, want 1", len(c.Moves()))
	}
}

func TestMoveHistoryDisabled(t *testing.T) {
	c := NewCube(WithMoveHistory(false))
	c.Apply(R, U)
	if len(c.Moves()) != 0 {
		t.Error("History should stay empty when disabled")
	}
}

func TestFromFacelets(t *testing.T) {
	src := NewCube()
	src.ApplyNotation("R U2 F' L D B2")

	c, err := FromFacelets(src.Facelets())
	if err != nil {
		t.Fatalf("FromFacelets: %v", err)
	}
	if *c.State() != *src.State() {
		t.Error("Decoded state differs from the source")
	}

	_, err = FromFacelets(solvedFacelets[:10])
	if !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("expected ErrInvalidFacelets, got %v", err)
	}
}

func TestScrambleAndReverse(t *testing.T) {
	c := NewCube()
	moves := c.Scramble(25, scramble.WithSeed(42))
	if len(moves) != 25 {
		t.Fatalf("got %d moves, want 25", len(moves))
	}
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	c.Apply(InvertMoves(moves)...)
	if !c.IsSolved() {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestSnapshotAndGrid(t *testing.T) {
	c := NewCube()
	if n := len(c.Snapshot()); n != 27 {
		t.Errorf("Snapshot has %d cells, want 27", n)
	}
	if !strings.HasPrefix(c.String(), "      W W W") {
		t.Errorf("unexpected net:\n%s", c.String())
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if got := tr.Reached(); len(got) != 2 {
		t.Errorf("Reached() after reset = %v", got)
	}
}

func TestTrackerGoalCallbacks(t *testing.T) {
	tr := NewTracker()

	var entered []string
	solved := 0
	tr.OnGoal(func(name string) { entered = append(entered, name) })
	tr.OnSolved(func() { solved++ })

	tr.ApplyMoves([]Move{R, U, F})
	if len(entered) != 0 {
		t.Errorf("No goal should be entered while scrambling, got %v", entered)
	}
	if got := tr.Reached(); len(got) != 0 {
		t.Errorf("Reached() = %v, want none", got)
	}

	tr.ApplyMoves([]Move{FPrime, UPrime, RPrime})
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reversing moves")
	}
	if strings.Join(entered, ",") != "cross-D,solved" {
		t.Errorf("entered = %v, want [cross-D solved]", entered)
	}
	if solved != 1 {
		t.Errorf("OnSolved fired %d times, want 1", solved)
	}
}

func TestTrackerCrossOnly(t *testing.T) {
	tr := NewTracker()
	var entered []string
	tr.OnGoal(func(name string) { entered = append(entered, name) })

	// U turns never touch the D cross.
	tr.ApplyMoves([]Move{R, U, RPrime})
	if strings.Join(entered, ",") != "cross-D" {
		t.Errorf("entered = %v, want [cross-D]", entered)
	}
	if tr.IsSolved() {
		t.Error("R U R' should not be solved")
	}
}

func TestGoCubeMirrorsRotations(t *testing.T) {
	g := newGoCube(nil)

	var moves []string
	var goals []string
	g.OnMove(func(m Move) { moves = append(moves, m.Notation()) })
	g.OnGoal(func(name string) {
		goals = append(goals, name)
		// Callbacks may query the cube.
		_ = g.IsSolved()
	})

	// red clockwise, then red counter-clockwise
	g.handleFrame(protocol.Frame{Type: protocol.MsgTypeRotation, Payload: []byte{0x08, 0x00}})
	if g.IsSolved() {
		t.Error("Cube should be turned after R")
	}
	g.handleFrame(protocol.Frame{Type: protocol.MsgTypeRotation, Payload: []byte{0x09, 0x00}})

	if strings.Join(moves, " ") != "R R'" {
		t.Errorf("moves = %v", moves)
	}
	if strings.Join(goals, ",") != "cross-D,solved" {
		t.Errorf("goals = %v", goals)
	}
	if !g.IsSolved() {
		t.Error("Cube should be solved after R R'")
	}
}

func TestGoCubeBatteryAndErrors(t *testing.T) {
	g := newGoCube(nil)
	if g.Battery() != -1 {
		t.Errorf("Battery() = %d before any report, want -1", g.Battery())
	}

	level := 0
	g.OnBattery(func(l int) { level = l })
	g.handleFrame(protocol.Frame{Type: protocol.MsgTypeBattery, Payload: []byte{77}})
	if level != 77 || g.Battery() != 77 {
		t.Errorf("battery callback %d, Battery() %d, want 77", level, g.Battery())
	}

	var errs []error
	g.OnError(func(err error) { errs = append(errs, err) })
	g.handleFrame(protocol.Frame{Type: protocol.MsgTypeRotation, Payload: []byte{0x08}})
	if len(errs) != 1 {
		t.Errorf("expected one decode error, got %v", errs)
	}

	if err := g.Reset(); err != nil {
		t.Errorf("Reset without a connection: %v", err)
	}
}
