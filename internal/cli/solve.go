package cli

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/config"
	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/search"
	"github.com/SeamusWaldron/piececube/internal/solver"
	"github.com/SeamusWaldron/piececube/internal/storage"
)

// newBackend builds the configured solver backend, or nil for "none".
func newBackend(c *config.Config) solver.Solver {
	switch c.Backend {
	case config.BackendHTTP:
		return solver.NewHTTP(c.Endpoint, &http.Client{Timeout: c.Timeout})
	case config.BackendExec:
		return solver.NewExec(c.Command)
	default:
		return nil
	}
}

// newService builds a solver service. fallback is "none", "solved" or
// "cross".
func newService(c *config.Config, fallback string, depth int) (*solver.Service, error) {
	opts := []solver.Option{
		solver.WithLogger(log),
		solver.WithTimeout(c.Timeout),
	}
	if fallback != "none" {
		goal, err := search.GoalByName(fallback)
		if err != nil {
			return nil, err
		}
		opts = append(opts, solver.WithFallback(goal, depth))
	}
	return solver.NewService(newBackend(c), opts...), nil
}

func newSolveCmd() *cobra.Command {
	var (
		facelets   string
		fallback   string
		depth      int
		save       bool
		scrambleID string
	)

	cmd := &cobra.Command{
		Use:   `solve ["<moves>" | --facelets S | --scramble ID]`,
		Short: "Solve a cube with the configured solver",
		Long: `Solve a cube given as a move sequence from solved, as a facelet string, or
as a saved scramble. The external two-phase solver configured under
"solver" is asked first. When it is missing or fails, a bounded search for
the fallback goal runs instead. With --fallback none no search runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fallback") {
				fallback = cfg.Fallback
			}
			if !cmd.Flags().Changed("depth") {
				depth = cfg.MaxDepth
			}

			var db *storage.DB
			if save || scrambleID != "" {
				var err error
				if db, err = openDB(); err != nil {
					return err
				}
				defer db.Close()
			}

			st, input, err := solveInput(db, args, facelets, scrambleID)
			if err != nil {
				return err
			}

			svc, err := newService(cfg, fallback, depth)
			if err != nil {
				return err
			}

			var res solver.Result
			if st != nil {
				res = svc.Solve(cmd.Context(), st)
			} else {
				res = svc.SolveFacelets(cmd.Context(), input)
			}
			printResult(cmd, res)

			if save {
				errMsg := ""
				if res.Err != nil {
					errMsg = res.Err.Error()
				}
				id, err := storage.NewSolutionRepository(db).Create(scrambleID, input, string(res.Status), res.Source, res.Moves, errMsg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styled(labelStyle, "Saved:"), id)
			}

			switch res.Status {
			case solver.StatusInvalidInput, solver.StatusUnavailable:
				return res.Err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&facelets, "facelets", "", "54-character facelet string to solve")
	cmd.Flags().StringVar(&scrambleID, "scramble", "", "solve a saved scramble by ID")
	cmd.Flags().StringVar(&fallback, "fallback", "cross", "search goal when the solver fails: none, solved or cross")
	cmd.Flags().IntVar(&depth, "depth", search.DefaultMaxDepth, "fallback search depth bound")
	cmd.Flags().BoolVar(&save, "save", false, "store the result in the history database")
	cmd.MarkFlagsMutuallyExclusive("facelets", "scramble")

	return cmd
}

// solveInput resolves the cube to solve. It returns either a state built
// from moves, or nil and a facelet string left for the service to check.
func solveInput(db *storage.DB, args []string, facelets, scrambleID string) (*cube.State, string, error) {
	sources := 0
	for _, set := range []bool{len(args) == 1, facelets != "", scrambleID != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, "", errors.New(`give exactly one of "<moves>", --facelets or --scramble`)
	}

	switch {
	case facelets != "":
		return nil, strings.ToUpper(strings.TrimSpace(facelets)), nil
	case scrambleID != "":
		sc, err := storage.NewScrambleRepository(db).Get(scrambleID)
		if err != nil {
			return nil, "", fmt.Errorf("scramble %s: %w", scrambleID, err)
		}
		return nil, sc.Facelets, nil
	default:
		st, _, err := stateFromMoves(args[0])
		if err != nil {
			return nil, "", err
		}
		return st, facelet.String(st, facelet.Standard), nil
	}
}

func printResult(cmd *cobra.Command, res solver.Result) {
	out := cmd.OutOrStdout()
	status := string(res.Status)
	switch res.Status {
	case solver.StatusSolved, solver.StatusPartial:
		status = styled(moveStyle, status)
	default:
		status = styled(errorStyle, status)
	}
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Status:"), status)
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Source:"), res.Source)
	if res.Moves != nil {
		fmt.Fprintf(out, "%s %s (%d)\n", styled(labelStyle, "Moves:"), styled(moveStyle, notation.Format(res.Moves)), len(res.Moves))
	}
	if res.Err != nil {
		fmt.Fprintf(out, "%s %v\n", styled(labelStyle, "Error:"), res.Err)
	}
	if res.BackendErr != nil {
		fmt.Fprintf(out, "%s %v\n", styled(labelStyle, "Backend:"), res.BackendErr)
	}
}

func newCrossCmd() *cobra.Command {
	var (
		depth int
		face  string
	)

	cmd := &cobra.Command{
		Use:   `cross "<moves>"`,
		Short: "Search for the shortest sequence that solves a cross",
		Long: `Apply moves to a solved cube, then search breadth-first for the shortest
sequence that brings the four edges around a face home. The search gives
up at --depth moves.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = cfg.MaxDepth
			}
			f, ok := cube.ParseFace(strings.ToUpper(face))
			if !ok {
				return fmt.Errorf("unknown face %q", face)
			}
			st, _, err := stateFromMoves(args[0])
			if err != nil {
				return err
			}

			goal := search.Cross(f)
			log.WithFields(logrus.Fields{"goal": goal.Name, "depth": depth}).Debug("searching")
			moves, err := search.BFS(cmd.Context(), st, goal, search.WithMaxDepth(depth))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%d)\n", styled(labelStyle, goal.Name+":"), styled(moveStyle, notation.Format(moves)), len(moves))
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", search.DefaultMaxDepth, "search depth bound")
	cmd.Flags().StringVar(&face, "face", "D", "face whose cross to solve")
	return cmd
}
