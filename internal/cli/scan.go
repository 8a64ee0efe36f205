package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube"
)

func newScanCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan for GoCube devices",
		Long:  `Scan for nearby GoCube smart cubes over Bluetooth Low Energy.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scanning for GoCube devices...")

			devices, err := piececube.Scan(cmd.Context(), timeout)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			if len(devices) == 0 {
				fmt.Fprintln(out, "No devices found. Make sure the cube is awake and not connected to a phone.")
				return nil
			}
			for _, d := range devices {
				fmt.Fprintf(out, "  %-20s RSSI %d dBm\n", d.Name, d.RSSI)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "scan duration")
	return cmd
}
