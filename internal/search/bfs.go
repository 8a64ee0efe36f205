// Package search runs bounded breadth-first searches over face turns.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// ErrNoSolution is returned when the depth bound or the node budget is
// exhausted.
var ErrNoSolution = errors.New("search: no solution within depth bound")

const (
	// DefaultMaxDepth bounds a search when WithMaxDepth is not given.
	DefaultMaxDepth = 8
	// DefaultMaxNodes caps the visited set when WithMaxNodes is not given.
	// A full-state search passes it around depth 6; a cross search never
	// does.
	DefaultMaxNodes = 2_000_000
)

// Option configures a search.
type Option func(*config)

type config struct {
	maxDepth int
	maxNodes int
	moves    []types.Move
}

// WithMaxDepth sets the longest sequence the search will return.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithMaxNodes sets how many distinct states the search may visit before
// giving up. Zero or less means no budget.
func WithMaxNodes(n int) Option {
	return func(c *config) {
		c.maxNodes = n
	}
}

// WithMoves restricts the moves tried at each step.
func WithMoves(moves []types.Move) Option {
	return func(c *config) {
		c.moves = moves
	}
}

// AllMoves returns the 18 face turns.
func AllMoves() []types.Move {
	moves := make([]types.Move, 0, 18)
	for _, f := range types.Faces {
		for _, t := range []types.Turn{types.TurnCW, types.TurnCCW, types.Turn180} {
			moves = append(moves, types.Move{Face: f, Turn: t})
		}
	}
	return moves
}

type node struct {
	state  cube.State
	move   types.Move
	parent *node
}

func (n *node) path() []types.Move {
	var moves []types.Move
	for ; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

type level struct {
	nodes []*node
	depth int
}

// BFS returns a shortest sequence of moves that takes start to a state
// satisfying goal. start is not modified; every frontier node owns its own
// copy of the state. Successive turns of the same face are never tried.
func BFS(ctx context.Context, start *cube.State, goal Goal, opts ...Option) ([]types.Move, error) {
	cfg := &config{maxDepth: DefaultMaxDepth, maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.moves == nil {
		cfg.moves = AllMoves()
	}

	if goal.Reached(start) {
		return []types.Move{}, nil
	}

	visited := map[any]struct{}{goal.key(start): {}}
	cur := level{nodes: []*node{{state: *start}}}

	for cur.depth < cfg.maxDepth && len(cur.nodes) > 0 {
		next := level{depth: cur.depth + 1}
		for _, n := range cur.nodes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for _, m := range cfg.moves {
				if n.parent != nil && n.move.Face == m.Face {
					continue
				}
				child := &node{state: n.state, move: m, parent: n}
				child.state.ApplyMove(m)

				k := goal.key(&child.state)
				if _, seen := visited[k]; seen {
					continue
				}
				visited[k] = struct{}{}
				if cfg.maxNodes > 0 && len(visited) > cfg.maxNodes {
					return nil, fmt.Errorf("%w: visited %d states at depth %d", ErrNoSolution, cfg.maxNodes, next.depth)
				}

				if goal.Reached(&child.state) {
					return child.path(), nil
				}
				next.nodes = append(next.nodes, child)
			}
		}
		cur = next
	}
	return nil, ErrNoSolution
}
