// Package engine implements the read-only filter and aggregation
// queries that back every dashboard view.
package engine

import (
	"github.com/cartlens/cartlens/internal/model"
)

// Filters narrows the dataset by selected values per categorical
// column. Values within a column are OR-combined; columns are
// AND-combined. An empty list means no restriction on that column.
type Filters struct {
	Departments []string
	Aisles      []string
	Products    []string
}

// IsEmpty reports whether no selection is active.
func (f Filters) IsEmpty() bool {
	return len(f.Departments) == 0 && len(f.Aisles) == 0 && len(f.Products) == 0
}

// Apply returns the order lines matching every active selection. The
// input is never mutated; with no active selections the input slice is
// returned as-is.
func (f Filters) Apply(lines []model.OrderLine) []model.OrderLine {
	if f.IsEmpty() {
		return lines
	}

	departments := toSet(f.Departments)
	aisles := toSet(f.Aisles)
	products := toSet(f.Products)

	matched := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		if departments != nil && !departments[line.Department] {
			continue
		}
		if aisles != nil && !aisles[line.Aisle] {
			continue
		}
		if products != nil && !products[line.ProductName] {
			continue
		}
		matched = append(matched, line)
	}
	return matched
}

// toSet builds a membership set, or nil for an empty selection so the
// column imposes no restriction.
func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
