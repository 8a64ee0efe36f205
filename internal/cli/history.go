package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/storage"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved scrambles and solutions",
		Long:  `Display recent scrambles, newest first, with the solutions recorded for each.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			scrambles, err := storage.NewScrambleRepository(db).List(limit)
			if err != nil {
				return err
			}
			solutions := storage.NewSolutionRepository(db)

			out := cmd.OutOrStdout()
			if len(scrambles) == 0 {
				fmt.Fprintln(out, "No scrambles recorded yet.")
				return nil
			}

			fmt.Fprintln(out, styled(titleStyle, "Recent scrambles"))
			for _, sc := range scrambles {
				fmt.Fprintf(out, "\n%s  %s\n", sc.ScrambleID, sc.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "  %s %s\n", styled(labelStyle, "moves:"), styled(moveStyle, notation.Format(sc.Moves)))
				if sc.Seed != nil {
					fmt.Fprintf(out, "  %s %d\n", styled(labelStyle, "seed:"), *sc.Seed)
				}

				sols, err := solutions.ListForScramble(sc.ScrambleID)
				if err != nil {
					return err
				}
				for _, s := range sols {
					fmt.Fprintf(out, "  %s %-13s %-16s %s\n", styled(labelStyle, "solution:"), s.Status, s.Source, notation.Format(s.Moves))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of scrambles to display")
	return cmd
}
