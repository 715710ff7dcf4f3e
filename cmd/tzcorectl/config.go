package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// cliConfig mirrors the handful of settings tzcorectl cares about: where to
// look for tzdb data beyond the host's defaults, and the pattern `format`
// falls back to when the caller doesn't pass one on the command line.
type cliConfig struct {
	ZoneinfoPaths  []string `mapstructure:"zoneinfo_paths"`
	DefaultPattern string   `mapstructure:"default_pattern"`
}

var defaultCLIConfig = cliConfig{
	DefaultPattern: "uuuu-MM-dd'T'HH:mm:ssXXXXX",
}

// loadConfig reads an optional YAML config file the way tempus's
// internal/config.Load does: defaults first, then an override file if one
// exists, silently continuing on "no such file".
func loadConfig(explicitPath string) (*cliConfig, error) {
	v := viper.New()
	v.SetDefault("zoneinfo_paths", defaultCLIConfig.ZoneinfoPaths)
	v.SetDefault("default_pattern", defaultCLIConfig.DefaultPattern)

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tzcorectl"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := defaultCLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
