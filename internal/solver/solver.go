// Package solver connects the cubie model to external two-phase solvers.
//
// A Solver takes a cube definition string (54 face letters in facelet
// order, see facelet.Definition) and returns a move sequence such as
// "R U R' F2". The Service wraps a Solver with validation, reply checking
// and an explicit fallback search.
package solver

import (
	"context"
	"errors"
)

// Errors returned by Solver implementations.
var (
	// ErrRejected means the solver read the cube and refused it.
	ErrRejected = errors.New("solver: cube rejected")
	// ErrUnavailable means the solver could not be reached or run.
	ErrUnavailable = errors.New("solver: unavailable")
)

// Solver solves a cube definition string.
type Solver interface {
	Name() string
	Solve(ctx context.Context, definition string) (string, error)
}

// Func adapts a function to the Solver interface.
type Func func(ctx context.Context, definition string) (string, error)

// Name returns "func".
func (f Func) Name() string { return "func" }

// Solve calls f.
func (f Func) Solve(ctx context.Context, definition string) (string, error) {
	return f(ctx, definition)
}
