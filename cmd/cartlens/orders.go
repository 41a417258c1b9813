package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/model"
)

// rowChoices are the selectable page sizes for the orders table.
var rowChoices = []string{"10", "50", "100", "500", "1000", "all"}

func ordersCmd() *cobra.Command {
	var rows string
	var from string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Browse the orders table",
		Long: `Print the order lines as a table. --rows limits how many are shown
and --from selects whether they come from the top or the bottom of the
dataset.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := parseRowCount(rows)
			if err != nil {
				return err
			}
			if from != "top" && from != "bottom" {
				return fmt.Errorf("invalid --from value %q (want top or bottom)", from)
			}

			lines, err := loadFiltered(cmd)
			if err != nil {
				return err
			}

			page := sliceRows(lines, n, from == "bottom")
			printOrdersTable(page)

			if len(page) < len(lines) {
				fmt.Println(cli.SubtleStyle.Render(
					fmt.Sprintf("showing %s of %s order lines", cli.FormatInt(len(page)), cli.FormatInt(len(lines)))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rows, "rows", "10", fmt.Sprintf("number of rows to show (%s)", strings.Join(rowChoices, ", ")))
	cmd.Flags().StringVar(&from, "from", "top", "display from the top or bottom of the table")
	addFilterFlags(cmd)
	return cmd
}

// parseRowCount validates the --rows selector. "all" maps to -1.
func parseRowCount(rows string) (int, error) {
	for _, choice := range rowChoices {
		if rows == choice {
			if rows == "all" {
				return -1, nil
			}
			return strconv.Atoi(rows)
		}
	}
	return 0, fmt.Errorf("invalid --rows value %q (want one of %s)", rows, strings.Join(rowChoices, ", "))
}

// sliceRows takes n rows from the top or bottom of the dataset.
// n < 0 keeps everything.
func sliceRows(lines []model.OrderLine, n int, fromBottom bool) []model.OrderLine {
	if n < 0 || n >= len(lines) {
		return lines
	}
	if fromBottom {
		return lines[len(lines)-n:]
	}
	return lines[:n]
}

func printOrdersTable(lines []model.OrderLine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	headers := []string{
		"User ID", "Order ID", "Product Name", "Department", "Aisle",
		"Cart Order", "Reordered", "Order Number", "Days Since Prior", "Hour", "Day",
	}
	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = cli.TableHeaderStyle.Render(h)
	}
	fmt.Fprintln(w, strings.Join(styled, "\t"))

	for _, line := range lines {
		days := ""
		if line.HasDaysSincePrior() {
			days = strconv.FormatFloat(line.DaysSincePriorOrder, 'f', -1, 64)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%d\t%s\n",
			line.UserID, line.OrderID, line.ProductName, line.Department,
			line.Aisle, line.AddToCartOrder, line.Reordered,
			line.OrderNumber, days, line.HourOfDay, line.DayOfWeek)
	}
}
