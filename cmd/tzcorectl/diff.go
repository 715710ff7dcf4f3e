package main

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/go-timecore/timecore/tzif"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a.tzif> <b.tzif>",
		Short: "Compare two decoded TZif files field by field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args[0], args[1])
		},
	}
}

func runDiff(aPath, bPath string) error {
	a, err := decodeFile(aPath)
	if err != nil {
		return err
	}
	b, err := decodeFile(bPath)
	if err != nil {
		return err
	}

	if diff := cmp.Diff(a, b); diff != "" {
		fmt.Println("files differ: -A +B")
		fmt.Println(diff)
		return nil
	}
	fmt.Println("files are identical")
	return nil
}

func decodeFile(path string) (tzif.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return tzif.File{}, err
	}
	defer f.Close()
	data, err := tzif.Decode(f)
	if err != nil {
		return tzif.File{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return data, nil
}
