package model

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical column names. Source exports disagree on names for the same
// concept (order_hour_of_day vs order_hour_bins vs Hour), so every
// variant is mapped onto this set at load time.
const (
	ColUserID              = "user_id"
	ColOrderID             = "order_id"
	ColProductName         = "product_name"
	ColDepartment          = "department"
	ColAisle               = "aisle"
	ColAddToCartOrder      = "add_to_cart_order"
	ColReordered           = "reordered"
	ColOrderNumber         = "order_number"
	ColDaysSincePriorOrder = "days_since_prior_order"
	ColHourOfDay           = "order_hour_of_day"
	ColDayOfWeek           = "day_of_week"
)

// columnAliases maps a lowercased header cell to its canonical column.
// The canonical name itself is always accepted.
var columnAliases = map[string]string{
	"order_hour_bins": ColHourOfDay,
	"hour":            ColHourOfDay,
	"order_hour":      ColHourOfDay,
	"day":             ColDayOfWeek,
	"order_dow":       ColDayOfWeek,
	"dow":             ColDayOfWeek,
	"product":         ColProductName,
	"aisle_name":      ColAisle,
	"department_name": ColDepartment,
}

// requiredColumns must all resolve for a file to load. The remaining
// canonical columns are optional and default to zero values.
var requiredColumns = []string{
	ColUserID,
	ColOrderID,
	ColProductName,
	ColDepartment,
	ColAisle,
	ColReordered,
}

// Header maps canonical column names to their index in a CSV record.
type Header map[string]int

// Index returns the record index for a canonical column, or -1 when the
// column was absent from the source file.
func (h Header) Index(canonical string) int {
	if i, ok := h[canonical]; ok {
		return i
	}
	return -1
}

// ResolveHeader maps a raw CSV header row onto the canonical schema.
// Unknown columns are ignored. Missing required columns are an error
// naming every absent column.
func ResolveHeader(raw []string) (Header, error) {
	h := make(Header, len(raw))
	for i, cell := range raw {
		name := strings.ToLower(strings.TrimSpace(cell))
		if canonical, ok := columnAliases[name]; ok {
			name = canonical
		}
		if _, seen := h[name]; !seen {
			h[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := h[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return h, nil
}
