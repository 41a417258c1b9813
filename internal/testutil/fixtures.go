// Package testutil provides test helpers for building CSV fixtures and
// seeded order-line datasets.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cartlens/cartlens/internal/model"
)

// WriteCSV writes a CSV file into dir with the given name, header and
// rows, and returns its full path.
func WriteCSV(t *testing.T, dir, name string, header []string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// StandardHeader is the canonical column layout used by most fixtures.
var StandardHeader = []string{
	"user_id", "order_id", "product_name", "department", "aisle",
	"add_to_cart_order", "reordered", "order_number",
	"days_since_prior_order", "order_hour_of_day", "day_of_week",
}

// Line builds an order line with sensible defaults for fields a test
// does not care about.
func Line(userID, orderID int64, product, department string, reordered int) model.OrderLine {
	return model.OrderLine{
		UserID:      userID,
		OrderID:     orderID,
		ProductName: product,
		Department:  department,
		Aisle:       department + " aisle",
		Reordered:   reordered,
		OrderNumber: 1,
		HourOfDay:   10,
		DayOfWeek:   "Monday",
	}
}
