package engine

import (
	"sort"

	"github.com/cartlens/cartlens/internal/model"
)

// Ratio is a derived metric with an explicit validity flag. Valid is
// false when the denominator was zero, which presenters render as a
// "no data" state instead of dividing by zero.
type Ratio struct {
	Value float64
	Valid bool
}

// GroupStat is a per-group aggregate value (a mean or a count).
type GroupStat struct {
	Key   string
	Value float64
	Count int
}

// UniqueOrders counts distinct order ids.
func UniqueOrders(lines []model.OrderLine) int {
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		seen[line.OrderID] = true
	}
	return len(seen)
}

// UniqueUsers counts distinct user ids.
func UniqueUsers(lines []model.OrderLine) int {
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		seen[line.UserID] = true
	}
	return len(seen)
}

// UniqueProducts counts distinct product names.
func UniqueProducts(lines []model.OrderLine) int {
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		seen[line.ProductName] = true
	}
	return len(seen)
}

// OrdersPerUser returns unique orders divided by unique users.
func OrdersPerUser(lines []model.OrderLine) Ratio {
	users := UniqueUsers(lines)
	if users == 0 {
		return Ratio{}
	}
	return Ratio{Value: float64(UniqueOrders(lines)) / float64(users), Valid: true}
}

// AvgItemsPerOrder returns the mean number of order lines per order.
func AvgItemsPerOrder(lines []model.OrderLine) Ratio {
	orders := UniqueOrders(lines)
	if orders == 0 {
		return Ratio{}
	}
	return Ratio{Value: float64(len(lines)) / float64(orders), Valid: true}
}

// ReorderRate returns the mean of the reordered indicator across all
// order lines.
func ReorderRate(lines []model.OrderLine) Ratio {
	if len(lines) == 0 {
		return Ratio{}
	}
	var reordered int
	for _, line := range lines {
		reordered += line.Reordered
	}
	return Ratio{Value: float64(reordered) / float64(len(lines)), Valid: true}
}

// ReorderRateByDepartment returns the mean reorder rate per department,
// sorted descending by rate. Ties keep first-appearance order.
func ReorderRateByDepartment(lines []model.OrderLine) []GroupStat {
	type acc struct {
		reordered int
		total     int
	}
	groups := make(map[string]*acc)
	var order []string
	for _, line := range lines {
		a, ok := groups[line.Department]
		if !ok {
			a = &acc{}
			groups[line.Department] = a
			order = append(order, line.Department)
		}
		a.reordered += line.Reordered
		a.total++
	}

	stats := make([]GroupStat, 0, len(order))
	for _, dept := range order {
		a := groups[dept]
		stats = append(stats, GroupStat{
			Key:   dept,
			Value: float64(a.reordered) / float64(a.total),
			Count: a.total,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Value > stats[j].Value })
	return stats
}

// DepartmentCounts returns order-line counts per department, sorted
// descending by count.
func DepartmentCounts(lines []model.OrderLine) []GroupStat {
	counts := make(map[string]int)
	var order []string
	for _, line := range lines {
		if _, ok := counts[line.Department]; !ok {
			order = append(order, line.Department)
		}
		counts[line.Department]++
	}

	stats := make([]GroupStat, 0, len(order))
	for _, dept := range order {
		stats = append(stats, GroupStat{Key: dept, Value: float64(counts[dept]), Count: counts[dept]})
	}
	sort.SliceStable(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats
}

// UniqueValues returns the distinct values of the selected column in
// first-appearance order. Blank values are skipped.
func UniqueValues(lines []model.OrderLine, value func(model.OrderLine) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, line := range lines {
		v := value(line)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}
