// Package piececube models a 3x3 Rubik's cube as pieces (corner and edge
// permutation plus orientation) and connects it to the outside world:
// facelet strings, scrambles, external solvers and GoCube smart cubes.
//
// # Standalone Cube
//
//	c := piececube.NewCube()
//	c.Apply(piececube.R, piececube.U, piececube.RPrime, piececube.UPrime)
//
//	// Or from notation
//	if err := c.ApplyNotation("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(c.Facelets())
//	fmt.Println("Solved:", c.IsSolved())
//
// # Tracking
//
// A Tracker fires callbacks when a cube enters a goal such as the D cross
// or the solved state:
//
//	t := piececube.NewTracker()
//	t.OnSolved(func() { fmt.Println("solved!") })
//	t.ApplyMoves(moves)
//
// # Smart Cube
//
// Connect to a GoCube and mirror its turns:
//
//	g, err := piececube.ConnectFirst(ctx, 10*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	g.OnMove(func(m piececube.Move) {
//	    fmt.Println("Move:", m.Notation())
//	})
package piececube
