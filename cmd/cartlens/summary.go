package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/engine"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the key dataset metrics",
		Long: `Display the dashboard's key metrics: total orders, total users,
unique products, average products per order, overall reorder rate, and
average orders per customer. Filters narrow the dataset first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := loadFiltered(cmd)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Key Metrics"))
			fmt.Println(cli.Metric("Total Orders", cli.FormatInt(engine.UniqueOrders(lines))))
			fmt.Println(cli.Metric("Total Users", cli.FormatInt(engine.UniqueUsers(lines))))
			fmt.Println(cli.Metric("Unique Products", cli.FormatInt(engine.UniqueProducts(lines))))
			fmt.Println(cli.Metric("Avg Products per Order", cli.FormatRatio(engine.AvgItemsPerOrder(lines))))
			fmt.Println(cli.Metric("Overall Reorder Rate", cli.FormatPercent(engine.ReorderRate(lines))))
			fmt.Println(cli.Metric("Avg Orders per Customer", cli.FormatRatio(engine.OrdersPerUser(lines))))

			return nil
		},
	}

	addFilterFlags(cmd)
	return cmd
}
