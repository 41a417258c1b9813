package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/engine"
	"github.com/cartlens/cartlens/internal/model"
)

func topCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show top-K frequency charts",
		Long:  `Rank the most ordered products, busiest users, or most reordered products.`,
	}

	cmd.AddCommand(topProductsCmd())
	cmd.AddCommand(topUsersCmd())
	cmd.AddCommand(topReorderedCmd())

	return cmd
}

func topProductsCmd() *cobra.Command {
	return newTopCmd("products", "Most ordered products", "Top Ordered Products",
		func(lines []model.OrderLine, k int) []engine.Count {
			return engine.TopProducts(lines, k)
		})
}

func topUsersCmd() *cobra.Command {
	return newTopCmd("users", "Users with the most order lines", "Busiest Users",
		func(lines []model.OrderLine, k int) []engine.Count {
			return engine.TopUsers(lines, k)
		})
}

func topReorderedCmd() *cobra.Command {
	return newTopCmd("reordered", "Most reordered products", "Top Reordered Products",
		func(lines []model.OrderLine, k int) []engine.Count {
			return engine.TopReorderedProducts(lines, k)
		})
}

func newTopCmd(use, short, title string, query func([]model.OrderLine, int) []engine.Count) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := loadFiltered(cmd)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(title))
			fmt.Print(cli.BarChart(query(lines, limit)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show (0 = all)")
	addFilterFlags(cmd)
	return cmd
}
