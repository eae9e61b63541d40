// Package cli implements the waymark command tree.
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/placeways/waymark/internal/waytable"
)

var (
	waypointsSort string
	waypointsDesc bool
)

func init() {
	waypointsCmd.Flags().StringVar(&waypointsSort, "sort", string(waytable.SortByTitle), "sort column (title, start_year, place_id)")
	waypointsCmd.Flags().BoolVar(&waypointsDesc, "desc", false, "sort descending")
	rootCmd.AddCommand(waypointsCmd)
}

var waypointsCmd = &cobra.Command{
	Use:   "waypoints",
	Short: "List the waypoints in sequence order",
	Long:  "Print the dataset's waypoints in the order the sequencer would visit them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		waypoints, err := loadWaypoints(loadedConfig)
		if err != nil {
			return err
		}

		column := waytable.SortColumn(waypointsSort)
		if !validSortColumn(column) {
			return fmt.Errorf("unknown sort column %q", waypointsSort)
		}

		table := waytable.NewService(waypoints, loadedConfig.Table.PageSize)
		table.SetSort(column, waypointsDesc)

		rows := make([][]string, 0, table.Len())
		for i, wp := range table.SortOrder() {
			rows = append(rows, []string{
				strconv.Itoa(i),
				wp.Title,
				strconv.Itoa(wp.StartYear),
				strconv.Itoa(wp.EndYear),
				wp.PlaceID,
			})
		}

		headers := []string{"#", "TITLE", "START", "END", "PLACE ID"}
		return writeTable(cmd.OutOrStdout(), headers, rows)
	},
}

func validSortColumn(column waytable.SortColumn) bool {
	for _, c := range waytable.SortColumns {
		if c == column {
			return true
		}
	}
	return false
}
