// Package cli implements the waymark command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeways/waymark/internal/config"
	"github.com/placeways/waymark/internal/logging"
)

var (
	configPath string
	logLevel   string
	themeName  string

	loadedConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "waymark",
	Short: "Step through geographic waypoints in sequence",
	Long: "Waymark drives a waypoint sequencer: a transport control that steps " +
		"through a dataset of places in table order, keeping the table, the map " +
		"highlight, and the transport buttons in sync.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		logging.Setup(cfg.Log.Level)
		loadedConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a waymark.yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "default", "UI theme (default, high-contrast)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
