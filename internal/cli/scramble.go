package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/facelet"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/scramble"
	"github.com/SeamusWaldron/piececube/internal/storage"
)

func newScrambleCmd() *cobra.Command {
	var (
		length   int
		seed     uint64
		noRepeat bool
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "scramble",
		Short: "Generate a random scramble",
		Long: `Generate a random sequence of face turns and show the cube it produces.

Length and repeat avoidance default to the config file. Every scramble has
a seed; pass --seed to reproduce one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = cfg.ScrambleLength
			}
			if !cmd.Flags().Changed("no-repeat") {
				noRepeat = cfg.AvoidRepeats
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			if length < 0 {
				return fmt.Errorf("length must not be negative, got %d", length)
			}

			st := cube.New()
			moves := scramble.New(scramble.WithSeed(seed), scramble.WithAvoidRepeats(noRepeat)).Scramble(st, length)
			facelets := facelet.String(st, facelet.Standard)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Scramble:"), styled(moveStyle, notation.Format(moves)))
			fmt.Fprintf(out, "%s %d\n", styled(labelStyle, "Seed:"), seed)
			fmt.Fprintf(out, "%s %s\n", styled(labelStyle, "Facelets:"), facelets)
			fmt.Fprintln(out)
			fmt.Fprint(out, renderNet(facelet.NewGrid(st, facelet.Standard), !flags.noColor))

			if !save {
				return nil
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := storage.NewScrambleRepository(db).Create(moves, facelets, &seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s %s\n", styled(labelStyle, "Saved:"), id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "n", 20, "number of moves")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	cmd.Flags().BoolVar(&noRepeat, "no-repeat", false, "never turn the same face twice in a row")
	cmd.Flags().BoolVar(&save, "save", false, "store the scramble in the history database")

	return cmd
}
