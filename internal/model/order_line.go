// Package model defines the core domain types for the order dataset.
package model

import (
	"fmt"
	"math"
)

// OrderLine represents a single row of the dataset: one product within
// one order.
type OrderLine struct {
	ProductName         string
	Department          string
	Aisle               string
	DayOfWeek           string
	DaysSincePriorOrder float64 // NaN when the source cell is blank
	UserID              int64
	OrderID             int64
	AddToCartOrder      int
	OrderNumber         int
	HourOfDay           int
	Reordered           int
}

// Validate checks the invariants a well-formed order line must satisfy.
func (l *OrderLine) Validate() error {
	if l.Reordered != 0 && l.Reordered != 1 {
		return fmt.Errorf("reordered must be 0 or 1, got %d", l.Reordered)
	}
	if l.HourOfDay < 0 || l.HourOfDay > 23 {
		return fmt.Errorf("hour of day must be between 0 and 23, got %d", l.HourOfDay)
	}
	return nil
}

// HasDaysSincePrior reports whether the days-since-prior-order value was
// present in the source data.
func (l *OrderLine) HasDaysSincePrior() bool {
	return !math.IsNaN(l.DaysSincePriorOrder)
}
