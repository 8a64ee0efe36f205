package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/storage"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and history database information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styled(titleStyle, "piececube status"))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Config dir:  %s\n", cfg.Dir)
			fmt.Fprintf(out, "Solver:      %s\n", backendLabel())
			fmt.Fprintf(out, "Fallback:    %s (depth %d)\n", cfg.Fallback, cfg.MaxDepth)
			fmt.Fprintf(out, "Scramble:    %d moves\n", cfg.ScrambleLength)

			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ver, err := db.CurrentVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Database:    %s (schema %d/%d)\n", db.Path(), ver, storage.LatestVersion())

			scrambles, err := storage.NewScrambleRepository(db).List(1)
			if err != nil {
				return err
			}
			if len(scrambles) > 0 {
				fmt.Fprintf(out, "Last scramble: %s\n", scrambles[0].CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}
}

func backendLabel() string {
	if b := newBackend(cfg); b != nil {
		return b.Name()
	}
	return "none"
}
