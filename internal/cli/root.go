// Package cli implements the piececube command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube/internal/config"
	"github.com/SeamusWaldron/piececube/internal/storage"
)

const version = "0.1.0"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dbPath    string
	verbose   bool
	noColor   bool
}

var (
	flags rootFlags

	// Set by PersistentPreRunE.
	cfg *config.Config
	log *logrus.Logger
)

// NewRootCmd creates the top-level "piececube" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "piececube",
		Short: "Rubik's cube model, scrambler and solver front end",
		Long: `piececube models a 3x3 Rubik's cube as corner and edge pieces.

Generate scrambles, convert cubes to and from 54-character facelet strings,
ask an external two-phase solver for a solution (with an optional bounded
search as fallback), play in the terminal, or mirror a GoCube smart cube.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = newLogger(cmd.ErrOrStderr(), flags.verbose)

			dir, err := config.ResolveDir(flags.configDir)
			if err != nil {
				return err
			}
			cfg, err = config.Load(dir)
			if err != nil {
				return err
			}
			log.WithField("config_dir", dir).Debug("config loaded")
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: $PIECECUBE_CONFIG_DIR or ~/.piececube)")
	root.PersistentFlags().StringVar(&flags.dbPath, "db", "", "history database path (default: <config dir>/history.db)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "print the cube net without colors")

	root.AddCommand(newScrambleCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newFaceletsCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newCrossCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newStatusCmd())

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// dbPath returns the database path from flag, config or default.
func dbPath() string {
	if flags.dbPath != "" {
		return flags.dbPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	return storage.DefaultPath(cfg.Dir)
}

func openDB() (*storage.DB, error) {
	path := dbPath()
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("database opened")
	return db, nil
}
