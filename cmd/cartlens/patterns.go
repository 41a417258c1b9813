package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/engine"
	"github.com/cartlens/cartlens/internal/model"
)

func patternsCmd() *cobra.Command {
	var heatmap bool
	var counts bool

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Show order patterns by day and hour",
		Long: `Display order-line counts by day of week and by hour of day.
With --heatmap the two are crossed into a day × hour grid.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := loadFiltered(cmd)
			if err != nil {
				return err
			}

			if heatmap {
				ct := engine.DayHourCrossTab(lines)
				fmt.Println(cli.FormatTitle("Order Heatmap by Day & Hour"))
				if counts {
					fmt.Print(cli.CrossTabTable(ct))
				} else {
					fmt.Print(cli.Heatmap(ct))
				}
				return nil
			}

			fmt.Println(cli.FormatTitle("Orders by Day of Week"))
			fmt.Print(cli.BarChart(dayCounts(lines)))

			fmt.Println()
			fmt.Println(cli.FormatTitle("Orders by Hour of Day"))
			fmt.Print(cli.BarChart(hourCounts(lines)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&heatmap, "heatmap", false, "render the day × hour cross-tabulation")
	cmd.Flags().BoolVar(&counts, "counts", false, "with --heatmap, print raw counts instead of shading")
	addFilterFlags(cmd)
	return cmd
}

// dayCounts folds the day × hour cross-tab down to per-day totals so
// the rows come out in calendar order.
func dayCounts(lines []model.OrderLine) []engine.Count {
	ct := engine.DayHourCrossTab(lines)
	counts := make([]engine.Count, 0, len(ct.RowKeys))
	for i, day := range ct.RowKeys {
		total := 0
		for j := range ct.ColKeys {
			total += ct.Cells[i][j]
		}
		counts = append(counts, engine.Count{Key: day, Count: total})
	}
	return counts
}

func hourCounts(lines []model.OrderLine) []engine.Count {
	ct := engine.DayHourCrossTab(lines)
	counts := make([]engine.Count, 0, len(ct.ColKeys))
	for j, hour := range ct.ColKeys {
		total := 0
		for i := range ct.RowKeys {
			total += ct.Cells[i][j]
		}
		counts = append(counts, engine.Count{Key: hour, Count: total})
	}
	return counts
}
