package main

import (
	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Launch the full-screen dashboard with tabs for metrics, order
patterns, products, users, and the orders table. Filters apply live.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			return tui.Run(lines)
		},
	}

	return cmd
}
