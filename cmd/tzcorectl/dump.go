package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-timecore/timecore/tzif"
)

func newDumpCmd() *cobra.Command {
	var printTransitions bool
	cmd := &cobra.Command{
		Use:   "dump <tzif-file>",
		Short: "Print the header, body and POSIX-TZ footer of a TZif file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], printTransitions)
		},
	}
	cmd.Flags().BoolVarP(&printTransitions, "transitions", "t", false, "print each transition in human readable form")
	return cmd
}

func runDump(path string, printTransitions bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := tzif.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	printDumpHeader("v1", data.V1Header)
	printV1Body(data.V1Body)

	if data.HasUpgrade {
		printDumpHeader(data.Version.String(), data.V2Header)
		printBody(data.Body)
		if printTransitions {
			printBodyTransitions(data.Body)
		}
		fmt.Println("Footer")
		fmt.Println("  TZString =", string(data.Footer.TZString))
	}
	return nil
}

func printDumpHeader(label string, h tzif.Header) {
	fmt.Println("Header", label)
	fmt.Println("  isutcnt =", h.Isutcnt)
	fmt.Println("  isstdcnt =", h.Isstdcnt)
	fmt.Println("  leapcnt =", h.Leapcnt)
	fmt.Println("  timecnt =", h.Timecnt)
	fmt.Println("  typecnt =", h.Typecnt)
	fmt.Println("  charcnt =", h.Charcnt)
	fmt.Println()
}

func printV1Body(b tzif.V1Body) {
	fmt.Println("Data block v1")
	fmt.Printf("  TransitionTimes (%d) = %v\n", len(b.TransitionTimes), b.TransitionTimes)
	fmt.Printf("  TransitionTypes (%d) = %v\n", len(b.TransitionTypes), b.TransitionTypes)
	fmt.Printf("  LocalTimeTypes (%d) = %+v\n", len(b.LocalTimeTypes), b.LocalTimeTypes)
	fmt.Printf("  Designations = %v\n", strings.Split(string(b.Designations), "\x00"))
	fmt.Println()
}

func printBody(b tzif.Body) {
	fmt.Println("Data block")
	fmt.Printf("  TransitionTimes (%d) = %v\n", len(b.TransitionTimes), b.TransitionTimes)
	fmt.Printf("  TransitionTypes (%d) = %v\n", len(b.TransitionTypes), b.TransitionTypes)
	fmt.Printf("  LocalTimeTypes (%d) = %+v\n", len(b.LocalTimeTypes), b.LocalTimeTypes)
	fmt.Printf("  Designations = %v\n", strings.Split(string(b.Designations), "\x00"))
	fmt.Printf("  LeapSeconds (%d) = %+v\n", len(b.LeapSeconds), b.LeapSeconds)
	fmt.Println()
}

func printBodyTransitions(b tzif.Body) {
	fmt.Println("Transitions")
	for i, tt := range b.TransitionTimes {
		ltt := b.LocalTimeTypes[b.TransitionTypes[i]]
		fmt.Printf("  %s (%d) => %s\n", time.Unix(tt, 0).UTC().Format(time.RFC1123), tt, formatLocalTimeType(b, ltt))
	}
	fmt.Println()
}

func formatLocalTimeType(b tzif.Body, r tzif.LocalTimeType) string {
	desig := tzif.Designation(b.Designations, r.Idx)
	var dst string
	if r.Dst {
		dst = ", dst"
	}
	return fmt.Sprintf("%s: %s (%d)%s", desig, time.Duration(r.Utoff)*time.Second, r.Utoff, dst)
}
