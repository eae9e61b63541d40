// Package config loads Waymark configuration from file, environment and
// defaults via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// TemporalControl configures the dateline filter. Its presence in the
// config gates whether the filter is created at all.
type TemporalControl struct {
	From float64 `mapstructure:"from"`
	To   float64 `mapstructure:"to"`
}

// Controls selects which map controls are constructed.
type Controls struct {
	// Sequencer gates whether the sequencer control is created.
	Sequencer bool `mapstructure:"sequencer"`
}

// Config is the top-level Waymark configuration.
type Config struct {
	Controls Controls `mapstructure:"controls"`

	// TemporalControl is nil when the config omits the section, which
	// disables the dateline.
	TemporalControl *TemporalControl `mapstructure:"temporal_control"`

	Sequencer struct {
		StepDelaySeconds int `mapstructure:"step_delay_seconds"`
	} `mapstructure:"sequencer"`

	Dataset struct {
		// Path points at a waypoint JSON file. Empty means the builtin
		// demo dataset.
		Path string `mapstructure:"path"`
	} `mapstructure:"dataset"`

	Table struct {
		PageSize int `mapstructure:"page_size"`
	} `mapstructure:"table"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// Default returns the configuration used when no file or environment
// overrides anything.
func Default() Config {
	var cfg Config
	cfg.Controls.Sequencer = true
	cfg.Sequencer.StepDelaySeconds = 3
	cfg.Table.PageSize = 10
	cfg.Log.Level = "info"
	return cfg
}

// Load reads configuration from the given file path, or from waymark.yaml
// in the working directory and ~/.config/waymark when the path is empty.
// Environment variables with the WAYMARK_ prefix override file values.
func Load(path string) (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("controls.sequencer", defaults.Controls.Sequencer)
	v.SetDefault("sequencer.step_delay_seconds", defaults.Sequencer.StepDelaySeconds)
	v.SetDefault("table.page_size", defaults.Table.PageSize)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix("WAYMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("waymark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homeConfigDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
			// No file is fine; defaults and environment carry it.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func homeConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "waymark"), nil
}
