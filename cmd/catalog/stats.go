package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show price statistics and dataset metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.openCatalog()
			if err != nil {
				return err
			}

			stats := svc.PriceStats()
			meta := svc.Metadata()
			out := cmd.OutOrStdout()

			if opts.format == formatJSON {
				return writeJSON(out, map[string]any{
					"dataset":    meta,
					"priceStats": stats,
				})
			}

			rows := [][]string{
				{"Category", meta.Category},
				{"Source", meta.SourceURL},
				{"Products loaded", strconv.Itoa(meta.LoadedCount)},
				{"Products listed", strconv.Itoa(meta.TotalProducts)},
				{"NSF products", strconv.Itoa(meta.NSFProducts)},
				{"Prices found", strconv.Itoa(meta.PricesFound)},
			}
			if stats == nil {
				rows = append(rows, []string{"Prices", "no parseable samples"})
			} else {
				rows = append(rows,
					[]string{"Price samples", strconv.Itoa(stats.Count)},
					[]string{"Min", money(stats.Min)},
					[]string{"Max", money(stats.Max)},
					[]string{"Mean", money(stats.Mean)},
					[]string{"Median", money(stats.Median)},
				)
			}
			return writeTable(out, []string{"FIELD", "VALUE"}, rows)
		},
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
