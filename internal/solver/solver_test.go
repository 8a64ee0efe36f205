package solver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/search"
)

func scrambled(t *testing.T, seq string) *cube.State {
	t.Helper()
	moves, err := notation.ParseSequence(seq)
	require.NoError(t, err)
	s := cube.New()
	s.ApplyMoves(moves)
	return s
}

func reply(s string, err error) Func {
	return func(context.Context, string) (string, error) { return s, err }
}

func TestServiceUsesBackend(t *testing.T) {
	var got string
	backend := Func(func(_ context.Context, def string) (string, error) {
		got = def
		return "U' R'", nil
	})
	st := scrambled(t, "R U")
	before := *st

	res := NewService(backend).Solve(context.Background(), st)
	require.Equal(t, StatusSolved, res.Status, "err: %v", res.Err)
	assert.Equal(t, "U' R'", notation.Format(res.Moves))
	assert.Equal(t, "func", res.Source)
	assert.Equal(t, before, *st)

	want, err := facelet.Definition(facelet.String(st, facelet.Standard), facelet.Standard)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestServiceAlreadySolved(t *testing.T) {
	res := NewService(nil).Solve(context.Background(), cube.New())
	assert.Equal(t, StatusSolved, res.Status)
	assert.Empty(t, res.Moves)
	assert.Equal(t, SourceTrivial, res.Source)
}

func TestServiceRejected(t *testing.T) {
	backend := reply("", ErrRejected)
	res := NewService(backend).Solve(context.Background(), scrambled(t, "F"))
	assert.Equal(t, StatusInvalidInput, res.Status)
	assert.ErrorIs(t, res.Err, ErrRejected)
	assert.Empty(t, res.Moves)
}

func TestServiceRejectedFallsBack(t *testing.T) {
	backend := reply("", ErrRejected)
	res := NewService(backend, WithFallback(search.Solved(), 3)).Solve(context.Background(), scrambled(t, "F"))
	require.Equal(t, StatusSolved, res.Status)
	assert.Equal(t, "F'", notation.Format(res.Moves))
	assert.Equal(t, "search:solved", res.Source)
	assert.NoError(t, res.Err)
	assert.ErrorIs(t, res.BackendErr, ErrRejected)
}

func TestServiceUnavailableWithoutFallback(t *testing.T) {
	res := NewService(reply("", ErrUnavailable)).Solve(context.Background(), scrambled(t, "F"))
	assert.Equal(t, StatusUnavailable, res.Status)
	assert.ErrorIs(t, res.Err, ErrUnavailable)
	assert.Empty(t, res.Moves)

	res = NewService(nil).Solve(context.Background(), scrambled(t, "F"))
	assert.Equal(t, StatusUnavailable, res.Status)
}

func TestServiceFallsBackWhenConfigured(t *testing.T) {
	logger, hook := test.NewNullLogger()
	svc := NewService(reply("", ErrUnavailable),
		WithFallback(search.Solved(), 3),
		WithLogger(logger),
	)

	res := svc.Solve(context.Background(), scrambled(t, "R U"))
	require.Equal(t, StatusSolved, res.Status)
	assert.Equal(t, "U' R'", notation.Format(res.Moves))
	assert.Equal(t, "search:solved", res.Source)
	assert.ErrorIs(t, res.BackendErr, ErrUnavailable)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestServicePartialFallback(t *testing.T) {
	svc := NewService(nil, WithFallback(search.Cross(cube.D), 4))
	st := scrambled(t, "R U F")

	res := svc.Solve(context.Background(), st)
	require.Equal(t, StatusPartial, res.Status)
	assert.Equal(t, "search:cross-D", res.Source)

	st.ApplyMoves(res.Moves)
	assert.True(t, search.Cross(cube.D).Reached(st))
	assert.False(t, st.IsSolved())
}

func TestServiceFallbackExhausted(t *testing.T) {
	svc := NewService(nil, WithFallback(search.Solved(), 1))
	res := svc.Solve(context.Background(), scrambled(t, "R U F"))
	assert.Equal(t, StatusNoSolution, res.Status)
	assert.ErrorIs(t, res.Err, search.ErrNoSolution)
}

func TestServiceChecksReply(t *testing.T) {
	tests := map[string]string{
		"unparseable": "R X",
		"wrong moves": "R R",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			res := NewService(reply(body, nil)).Solve(context.Background(), scrambled(t, "F"))
			assert.Equal(t, StatusUnavailable, res.Status)
			assert.ErrorIs(t, res.Err, ErrBadReply)
		})
	}

	res := NewService(reply("R R", nil), WithFallback(search.Solved(), 2)).
		Solve(context.Background(), scrambled(t, "F"))
	assert.Equal(t, StatusSolved, res.Status)
	assert.Equal(t, "F'", notation.Format(res.Moves))
}

func TestServiceInvalidInput(t *testing.T) {
	svc := NewService(reply("R", nil))

	res := svc.SolveFacelets(context.Background(), "WWW")
	assert.Equal(t, StatusInvalidInput, res.Status)
	assert.ErrorIs(t, res.Err, facelet.ErrLength)

	bad := cube.New()
	bad.CO[0] = 1
	res = svc.Solve(context.Background(), bad)
	assert.Equal(t, StatusInvalidInput, res.Status)
	assert.ErrorIs(t, res.Err, cube.ErrTwist)
}

func TestServiceSolveFacelets(t *testing.T) {
	st := scrambled(t, "L2 D")
	svc := NewService(reply("D' L2", nil))
	res := svc.SolveFacelets(context.Background(), facelet.String(st, facelet.Standard))
	assert.Equal(t, StatusSolved, res.Status)
}

func TestServiceTimeout(t *testing.T) {
	backend := Func(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", errors.Join(ErrUnavailable, ctx.Err())
	})
	res := NewService(backend, WithTimeout(10*time.Millisecond)).Solve(context.Background(), scrambled(t, "F"))
	assert.Equal(t, StatusUnavailable, res.Status)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestHTTPSolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("facelets") {
		case "solve-me":
			_, _ = w.Write([]byte("R U R'\n"))
		case "bad-cube":
			_, _ = w.Write([]byte("Error 2: not all 12 edges exist exactly once"))
		case "broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.Error(w, "invalid", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	h := NewHTTP(srv.URL+"/solve", srv.Client())
	ctx := context.Background()

	got, err := h.Solve(ctx, "solve-me")
	require.NoError(t, err)
	assert.Equal(t, "R U R'", got)

	_, err = h.Solve(ctx, "bad-cube")
	assert.ErrorIs(t, err, ErrRejected)

	_, err = h.Solve(ctx, "other")
	assert.ErrorIs(t, err, ErrRejected)

	_, err = h.Solve(ctx, "broken")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, "http:"+srv.URL+"/solve", h.Name())
}

func TestHTTPSolverUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTP(url, nil).Solve(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestExecSolver(t *testing.T) {
	ctx := context.Background()

	got, err := NewExec("sh", "-c", `echo "F' $0"`).Solve(ctx, "R")
	require.NoError(t, err)
	assert.Equal(t, "F' R", got)

	_, err = NewExec("sh", "-c", `echo "Error 3: Not all 12 edges exist exactly once"`).Solve(ctx, "x")
	assert.ErrorIs(t, err, ErrRejected)

	_, err = NewExec("sh", "-c", `echo "bad cube" >&2; exit 1`).Solve(ctx, "x")
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "bad cube")

	_, err = NewExec("/nonexistent/two-phase-solver").Solve(ctx, "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}
