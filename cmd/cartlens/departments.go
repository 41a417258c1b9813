package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/engine"
)

func departmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Show order counts and reorder rate by department",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := loadFiltered(cmd)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Orders by Department"))
			counts := engine.DepartmentCounts(lines)
			chart := make([]engine.Count, 0, len(counts))
			for _, c := range counts {
				chart = append(chart, engine.Count{Key: c.Key, Count: c.Count})
			}
			fmt.Print(cli.BarChart(chart))

			fmt.Println()
			fmt.Println(cli.FormatTitle("Reorder Rate by Department"))
			fmt.Print(cli.StatBarChart(engine.ReorderRateByDepartment(lines), true))

			return nil
		},
	}

	addFilterFlags(cmd)
	return cmd
}
