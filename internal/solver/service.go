package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/search"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// Status is the outcome of a solve request.
type Status string

const (
	StatusSolved       Status = "solved"        // Moves solve the cube
	StatusPartial      Status = "partial"       // Moves reach the fallback goal only
	StatusNoSolution   Status = "no_solution"   // Fallback search exhausted its bound
	StatusInvalidInput Status = "invalid_input" // The cube cannot be solved as given
	StatusUnavailable  Status = "unavailable"   // No solver answered and no fallback ran
)

// Source values for a Result that did not come from a backend.
const (
	SourceNone    = "none"
	SourceTrivial = "already-solved"
)

// ErrBadReply is reported when a solver answers with moves that do not
// parse or do not solve the cube.
var ErrBadReply = errors.New("solver: reply does not solve the cube")

// Result is the explicit outcome of Service.Solve.
type Result struct {
	Status Status
	Moves  []types.Move
	// Source names what produced Moves: a backend, "search:<goal>", or
	// one of the Source constants.
	Source string
	// Err explains every status other than StatusSolved and StatusPartial.
	Err error
	// BackendErr is the backend failure that sent the request to the
	// fallback search.
	BackendErr error
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards output.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithScheme sets the color scheme used to encode cubes.
func WithScheme(scheme facelet.Scheme) Option {
	return func(s *Service) {
		s.scheme = scheme
	}
}

// WithTimeout bounds each backend call.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithFallback runs a breadth-first search for goal, up to depth moves,
// whenever the backend does not produce a solution, including when it
// rejects a cube that passed Verify. Without it no fallback runs.
func WithFallback(goal search.Goal, depth int) Option {
	return func(s *Service) {
		s.fallback = &goal
		s.depth = depth
	}
}

// Service validates cubes, calls a backend and checks its answer.
type Service struct {
	backend  Solver
	log      logrus.FieldLogger
	scheme   facelet.Scheme
	timeout  time.Duration
	fallback *search.Goal
	depth    int
}

// NewService creates a Service. backend may be nil, in which case only the
// fallback search can produce moves.
func NewService(backend Solver, opts ...Option) *Service {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	s := &Service{
		backend: backend,
		log:     quiet,
		scheme:  facelet.Standard,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SolveFacelets decodes a color facelet string and solves it.
func (s *Service) SolveFacelets(ctx context.Context, facelets string) Result {
	st, err := facelet.Decode(facelets, s.scheme)
	if err != nil {
		return Result{Status: StatusInvalidInput, Source: SourceNone, Err: err}
	}
	return s.Solve(ctx, st)
}

// Solve finds moves that solve st. st is not modified.
func (s *Service) Solve(ctx context.Context, st *cube.State) Result {
	if err := st.Verify(); err != nil {
		return Result{Status: StatusInvalidInput, Source: SourceNone, Err: err}
	}
	if st.IsSolved() {
		return Result{Status: StatusSolved, Moves: []types.Move{}, Source: SourceTrivial}
	}

	facelets := facelet.String(st, s.scheme)
	def, err := facelet.Definition(facelets, s.scheme)
	if err != nil {
		return Result{Status: StatusInvalidInput, Source: SourceNone, Err: err}
	}

	var backendErr error
	if s.backend != nil {
		moves, err := s.callBackend(ctx, st, def)
		switch {
		case err == nil:
			return Result{Status: StatusSolved, Moves: moves, Source: s.backend.Name()}
		case errors.Is(err, ErrRejected) && s.fallback == nil:
			return Result{Status: StatusInvalidInput, Source: s.backend.Name(), Err: err}
		}
		backendErr = err
	} else {
		backendErr = fmt.Errorf("%w: no backend configured", ErrUnavailable)
	}

	if s.fallback == nil {
		return Result{Status: StatusUnavailable, Source: SourceNone, Err: backendErr}
	}
	s.log.WithError(backendErr).WithField("goal", s.fallback.Name).Warn("solver: falling back to search")
	res := s.search(ctx, st)
	res.BackendErr = backendErr
	return res
}

func (s *Service) callBackend(ctx context.Context, st *cube.State, def string) ([]types.Move, error) {
	log := s.log.WithFields(logrus.Fields{"backend": s.backend.Name(), "definition": def})
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.backend.Solve(ctx, def)
	log = log.WithField("elapsed", time.Since(start))
	if err != nil {
		log.WithError(err).Debug("solver: backend failed")
		return nil, err
	}
	log.WithField("reply", reply).Debug("solver: backend replied")

	moves, err := notation.ParseSequence(reply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	check := st.Clone()
	check.ApplyMoves(moves)
	if !check.IsSolved() {
		return nil, fmt.Errorf("%w: %q", ErrBadReply, reply)
	}
	return moves, nil
}

func (s *Service) search(ctx context.Context, st *cube.State) Result {
	source := "search:" + s.fallback.Name
	moves, err := search.BFS(ctx, st, *s.fallback, search.WithMaxDepth(s.depth))
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			return Result{Status: StatusNoSolution, Source: source, Err: err}
		}
		return Result{Status: StatusUnavailable, Source: source, Err: err}
	}

	check := st.Clone()
	check.ApplyMoves(moves)
	if check.IsSolved() {
		return Result{Status: StatusSolved, Moves: moves, Source: source}
	}
	return Result{Status: StatusPartial, Moves: moves, Source: source}
}
