package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/recorder"
)

type watchEvent struct {
	move piececube.Move
	at   time.Time
}

func newWatchCmd() *cobra.Command {
	var (
		timeout time.Duration
		record  bool
		resume  string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Mirror a GoCube's turns into the cube model",
		Long: `Connect to the first GoCube found and print every turn as it happens,
with the D cross and the solved cube announced when reached. The model
starts solved, so start with a solved cube. Press Ctrl+C to stop.

With --record the session and its moves are stored in the history database.
--resume continues an unfinished recorded session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scanning for GoCube devices...")
			g, err := piececube.ConnectFirst(ctx, timeout)
			if err != nil {
				return fmt.Errorf("connection failed: %w", err)
			}
			defer g.Close()

			log.WithField("device", g.DeviceName()).Info("connected")
			fmt.Fprintf(out, "Connected to %s. Turn the cube; Ctrl+C to stop.\n", g.DeviceName())

			var rec *recorder.Session
			if record || resume != "" {
				db, err := openDB()
				if err != nil {
					return err
				}
				defer db.Close()
				rec = recorder.NewSession(db)
				if resume != "" {
					err = rec.Resume(resume)
				} else {
					_, err = rec.Start(g.DeviceName())
				}
				if err != nil {
					return err
				}
				log.WithField("session", rec.SessionID()).Info("recording")
			}

			// Callbacks run on the BLE goroutine; this goroutine owns the
			// database.
			events := make(chan watchEvent, 64)
			g.OnMove(func(m piececube.Move) {
				select {
				case events <- watchEvent{move: m, at: time.Now()}:
				default:
					log.WithField("move", m.Notation()).Warn("event queue full, move dropped from recording")
				}
			})
			g.OnGoal(func(name string) {
				log.WithField("goal", name).Info("reached")
			})
			g.OnBattery(func(level int) {
				log.WithField("battery", level).Info("battery")
			})
			g.OnError(func(err error) {
				log.WithError(err).Debug("bad notification")
			})
			if err := g.RequestBattery(); err != nil {
				log.WithError(err).Debug("battery request failed")
			}

			return watchLoop(ctx, events, func(ev watchEvent) error {
				fmt.Fprintf(out, "%s ", styled(moveStyle, ev.move.Notation()))
				if rec == nil {
					return nil
				}
				return rec.Record(ev.at, ev.move)
			}, func() error {
				fmt.Fprintln(out)
				if rec == nil {
					return nil
				}
				solved := g.IsSolved()
				sum, err := rec.End(solved)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{"session": rec.SessionID(), "solved": solved}).Info("session ended")
				fmt.Fprintf(out, "Session %s: %d moves in %s (%.2f TPS, longest pause %s)\n",
					rec.SessionID(), sum.Moves, sum.Duration.Round(time.Millisecond), sum.TPS, sum.LongestPause)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "how long to look for a cube")
	cmd.Flags().BoolVar(&record, "record", false, "store the session in the history database")
	cmd.Flags().StringVar(&resume, "resume", "", "continue recording an unfinished session `ID`")
	cmd.MarkFlagsMutuallyExclusive("record", "resume")
	return cmd
}

// watchLoop feeds events to handle until ctx ends, then hands over the
// events still queued and calls done.
func watchLoop(ctx context.Context, events <-chan watchEvent, handle func(watchEvent) error, done func() error) error {
	for {
		select {
		case ev := <-events:
			if err := handle(ev); err != nil {
				return err
			}
		case <-ctx.Done():
			for {
				select {
				case ev := <-events:
					if err := handle(ev); err != nil {
						return err
					}
				default:
					return done()
				}
			}
		}
	}
}
