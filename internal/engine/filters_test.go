package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartlens/cartlens/internal/model"
	"github.com/cartlens/cartlens/internal/testutil"
)

func sampleLines() []model.OrderLine {
	return []model.OrderLine{
		testutil.Line(1, 100, "Milk", "dairy", 1),
		testutil.Line(1, 101, "Eggs", "dairy", 0),
		testutil.Line(2, 200, "Bananas", "produce", 1),
		testutil.Line(3, 300, "Limes", "produce", 0),
		testutil.Line(3, 301, "Milk", "dairy", 1),
	}
}

func TestFilters_Apply(t *testing.T) {
	lines := sampleLines()

	t.Run("empty filter is a no-op", func(t *testing.T) {
		got := Filters{}.Apply(lines)
		assert.Equal(t, lines, got)
	})

	t.Run("single department selection", func(t *testing.T) {
		got := Filters{Departments: []string{"produce"}}.Apply(lines)
		require.Len(t, got, 2)
		for _, line := range got {
			assert.Equal(t, "produce", line.Department)
		}
	})

	t.Run("values within a column combine with OR", func(t *testing.T) {
		got := Filters{Products: []string{"Milk", "Limes"}}.Apply(lines)
		assert.Len(t, got, 3)
	})

	t.Run("columns combine with AND", func(t *testing.T) {
		got := Filters{
			Departments: []string{"dairy"},
			Products:    []string{"Milk"},
		}.Apply(lines)
		require.Len(t, got, 2)
		for _, line := range got {
			assert.Equal(t, "Milk", line.ProductName)
			assert.Equal(t, "dairy", line.Department)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got := Filters{Departments: []string{"bakery"}}.Apply(lines)
		assert.Empty(t, got)
	})

	t.Run("output never exceeds input", func(t *testing.T) {
		got := Filters{Aisles: []string{"dairy aisle"}}.Apply(lines)
		assert.LessOrEqual(t, len(got), len(lines))
	})

	t.Run("source is not mutated", func(t *testing.T) {
		before := sampleLines()
		_ = Filters{Departments: []string{"dairy"}}.Apply(lines)
		assert.Equal(t, before, lines)
	})
}

func TestFilters_Commutativity(t *testing.T) {
	lines := sampleLines()

	deptFirst := Filters{Products: []string{"Milk"}}.Apply(
		Filters{Departments: []string{"dairy"}}.Apply(lines))
	productFirst := Filters{Departments: []string{"dairy"}}.Apply(
		Filters{Products: []string{"Milk"}}.Apply(lines))
	combined := Filters{
		Departments: []string{"dairy"},
		Products:    []string{"Milk"},
	}.Apply(lines)

	assert.Equal(t, deptFirst, productFirst)
	assert.Equal(t, combined, deptFirst)
}

func TestFilters_IsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())
	assert.False(t, Filters{Aisles: []string{"eggs"}}.IsEmpty())
}
