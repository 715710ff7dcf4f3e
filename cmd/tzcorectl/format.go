package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-timecore/timecore"
	"github.com/go-timecore/timecore/format"
)

func newFormatCmd() *cobra.Command {
	var patternFlag string
	cmd := &cobra.Command{
		Use:   "format <rfc3339-instant> <zone>",
		Short: "Render an instant in a zone against a compiled pattern",
		Long: "Render an instant in a zone against a compiled LDML-style pattern. " +
			"Falls back to the configured default_pattern (see --config) when --pattern is not given.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			pattern := patternFlag
			if pattern == "" {
				pattern = cfg.DefaultPattern
			}
			return runFormat(pattern, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&patternFlag, "pattern", "p", "", "pattern to compile (default from config)")
	return cmd
}

func runFormat(pattern, instantArg, zoneArg string) error {
	t, err := time.Parse(time.RFC3339Nano, instantArg)
	if err != nil {
		return fmt.Errorf("parsing instant %q: %w", instantArg, err)
	}
	instant, err := timecore.NewInstant(t.Unix(), t.Nanosecond())
	if err != nil {
		return err
	}

	zone, err := resolveZoneArg(zoneArg)
	if err != nil {
		return err
	}

	ldt := instant.ToLocalDateTime(zone)
	offset := zone.OffsetAt(instant)
	f, err := format.Compile(pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	c := format.DateTimeComponents{
		Year: ldt.Year(), HasYear: true,
		Month: int(ldt.Month()), HasMonth: true,
		Day: ldt.DayOfMonth(), HasDay: true,
		DayOfYear: ldt.Date().DayOfYear(), HasDayOfYear: true,
		DayOfWeek: int(ldt.DayOfWeek()), HasDayOfWeek: true,
		Hour: ldt.Hour(), HasHour: true,
		Minute: ldt.Minute(), HasMinute: true,
		Second: ldt.Second(), HasSecond: true,
		Nanosecond: ldt.Nanosecond(), HasNanosecond: true,
		OffsetSeconds: offset.TotalSeconds(), HasOffsetSeconds: true,
		ZoneID: zone.ID(), HasZoneID: true,
	}

	s, err := f.FormatComponents(c)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// resolveZoneArg reads any "+" or "-" followed only by digits as an offset
// in minutes (e.g. "+60", but also "+05" or "+0530"); every other string
// goes to TimeZone.Of.
func resolveZoneArg(s string) (timecore.TimeZone, error) {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		if minutes, err := strconv.Atoi(s); err == nil {
			offset, err := timecore.NewUtcOffset(minutes * 60)
			if err != nil {
				return timecore.TimeZone{}, err
			}
			return timecore.FixedZone(s, offset), nil
		}
	}
	host := timecore.NewFilesystemHost()
	return timecore.Of(s, host)
}
