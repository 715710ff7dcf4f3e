package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/go-timecore/timecore"
)

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List every zone id the configured tzdb search paths expose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runZones(cfg.ZoneinfoPaths)
		},
	}
}

func runZones(paths []string) error {
	host := timecore.NewFilesystemHost(paths...)
	ids := host.TzdbList()
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}
