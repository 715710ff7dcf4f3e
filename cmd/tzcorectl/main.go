// Command tzcorectl is a convenience wrapper around the timecore engine:
// it has no bearing on the core's semantics, only on exposing them from a
// shell. dump, diff and zones generalize go-tz's tzinfo/tzdiff/tzinspect
// example binaries into one tool; format exercises the pattern compiler.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tzcorectl",
		Short:        "Inspect, diff and format TZif time zone data",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "config file (default searches $HOME/.config/tzcorectl)")

	cmd.AddCommand(
		newDumpCmd(),
		newDiffCmd(),
		newFormatCmd(),
		newZonesCmd(),
	)
	return cmd
}
