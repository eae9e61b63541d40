// Package cli implements the waymark command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeways/waymark/internal/bridge"
	"github.com/placeways/waymark/internal/config"
	"github.com/placeways/waymark/internal/dateline"
	"github.com/placeways/waymark/internal/events"
	"github.com/placeways/waymark/internal/logging"
	"github.com/placeways/waymark/internal/models"
	"github.com/placeways/waymark/internal/sequencer"
	"github.com/placeways/waymark/internal/tui"
	"github.com/placeways/waymark/internal/waytable"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the Waymark TUI",
	Long:  "Launch the terminal user interface: map panel, waypoint table, and the sequencer transport.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(loadedConfig)
	},
}

func runTUI(cfg config.Config) error {
	logger := logging.Component("cli")

	waypoints, err := loadWaypoints(cfg)
	if err != nil {
		return err
	}
	logger.Info().Int("waypoints", len(waypoints)).Msg("dataset loaded")

	table := waytable.NewService(waypoints, cfg.Table.PageSize)
	host := tui.NewHost()
	repo := events.NewMemoryRepository()

	engineConfig := sequencer.DefaultConfig()
	engineConfig.StepDelaySeconds = cfg.Sequencer.StepDelaySeconds
	engine := sequencer.New(engineConfig)
	defer engine.Stop()

	// The bridge always backs the table and map sync. The config gate
	// only decides whether the control starts shown.
	br := bridge.New(engine, table, host, repo)
	if err := br.Attach("top-right"); err != nil {
		return fmt.Errorf("attach sequencer: %w", err)
	}
	defer br.Detach()
	if cfg.Controls.Sequencer {
		br.Toggle(true)
	}

	var dl *dateline.Dateline
	if cfg.TemporalControl != nil {
		dl = buildDateline(*cfg.TemporalControl, waypoints)
		defer dl.Destroy()
	}

	return tui.Run(tui.Config{
		Table:    table,
		Bridge:   br,
		Host:     host,
		Dateline: dl,
		Theme:    themeName,
	})
}

func loadWaypoints(cfg config.Config) ([]models.Waypoint, error) {
	if cfg.Dataset.Path == "" {
		return waytable.BuiltinWaypoints(), nil
	}
	waypoints, err := waytable.LoadWaypoints(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", cfg.Dataset.Path, err)
	}
	return waypoints, nil
}

func buildDateline(tc config.TemporalControl, waypoints []models.Waypoint) *dateline.Dateline {
	dataMin, dataMax := yearRange(waypoints)
	minValue, maxValue := dateline.Bounds(float64(dataMin), float64(dataMax))

	from, to := tc.From, tc.To
	if from == 0 && to == 0 {
		from, to = float64(dataMin), float64(dataMax)
	}

	return dateline.New(dateline.Config{
		FromValue: from,
		ToValue:   to,
		MinValue:  minValue,
		MaxValue:  maxValue,
	})
}

func yearRange(waypoints []models.Waypoint) (minYear, maxYear int) {
	if len(waypoints) == 0 {
		return 0, 0
	}
	minYear, maxYear = waypoints[0].StartYear, waypoints[0].EndYear
	for _, wp := range waypoints[1:] {
		if wp.StartYear < minYear {
			minYear = wp.StartYear
		}
		if wp.EndYear > maxYear {
			maxYear = wp.EndYear
		}
	}
	return minYear, maxYear
}
