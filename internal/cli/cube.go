package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/pkg/types"
)

// stateFromMoves applies a move sequence to a solved cube.
func stateFromMoves(seq string) (*cube.State, []types.Move, error) {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return nil, nil, err
	}
	st := cube.New()
	st.ApplyMoves(moves)
	return st, moves, nil
}

func printCube(cmd *cobra.Command, st *cube.State) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Facelets:"), facelet.String(st, facelet.Standard))
	fmt.Fprintf(out, "%s %t\n", styled(labelStyle, "Solved:"), st.IsSolved())
	fmt.Fprintln(out)
	fmt.Fprint(out, renderNet(facelet.NewGrid(st, facelet.Standard), !flags.noColor))
}

func newApplyCmd() *cobra.Command {
	var describe bool

	cmd := &cobra.Command{
		Use:   `apply "<moves>"`,
		Short: "Apply moves to a solved cube",
		Long: `Apply a move sequence such as "R U R' U'" to a solved cube and show the
result. Faces are U D L R F B; a suffix ' turns counter-clockwise and 2
turns twice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, moves, err := stateFromMoves(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Moves:"), styled(moveStyle, notation.Format(moves)))
			if describe {
				fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Plain:"), notation.DescribeSequence(moves))
			}
			printCube(cmd, st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&describe, "describe", false, "also describe the moves in plain words")
	return cmd
}

func newFaceletsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facelets <54 characters>",
		Short: "Decode and validate a facelet string",
		Long: `Decode a 54-character facelet string (faces U R F D L B, nine stickers
each, colors W R G Y O B) into piece permutation and orientation. The cube
must be reachable by face turns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := strings.ToUpper(strings.TrimSpace(args[0]))
			st, err := facelet.Decode(s, facelet.Standard)
			if err != nil {
				return err
			}
			def, err := facelet.Definition(s, facelet.Standard)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s", styled(labelStyle, "State:"), st)
			fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Definition:"), def)
			printCube(cmd, st)
			return nil
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `snapshot ["<moves>"]`,
		Short: "Print the 27-cell JSON snapshot of a cube",
		Long: `Apply moves to a solved cube and print every cell's position and visible
sticker colors as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := ""
			if len(args) == 1 {
				seq = args[0]
			}
			st, _, err := stateFromMoves(seq)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(facelet.NewSnapshot(st, facelet.Standard), "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling snapshot: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
