package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartlens/cartlens/internal/model"
	"github.com/cartlens/cartlens/internal/testutil"
)

// The canonical worked example: three order lines across two users.
func exampleLines() []model.OrderLine {
	return []model.OrderLine{
		testutil.Line(1, 1, "Milk", "dairy", 1),
		testutil.Line(1, 2, "Eggs", "dairy", 0),
		testutil.Line(2, 3, "Milk", "dairy", 1),
	}
}

func TestDistinctCounts(t *testing.T) {
	lines := exampleLines()

	assert.Equal(t, 3, UniqueOrders(lines))
	assert.Equal(t, 2, UniqueUsers(lines))
	assert.Equal(t, 2, UniqueProducts(lines))
}

func TestDistinctCounts_Empty(t *testing.T) {
	assert.Zero(t, UniqueOrders(nil))
	assert.Zero(t, UniqueUsers(nil))
	assert.Zero(t, UniqueProducts(nil))
}

func TestOrdersPerUser(t *testing.T) {
	r := OrdersPerUser(exampleLines())
	require.True(t, r.Valid)
	assert.InDelta(t, 1.5, r.Value, 1e-9)
}

func TestOrdersPerUser_NoUsers(t *testing.T) {
	r := OrdersPerUser(nil)
	assert.False(t, r.Valid, "zero users must yield an explicit no-data state")
	assert.Zero(t, r.Value)
}

func TestAvgItemsPerOrder(t *testing.T) {
	lines := []model.OrderLine{
		testutil.Line(1, 1, "Milk", "dairy", 1),
		testutil.Line(1, 1, "Eggs", "dairy", 0),
		testutil.Line(1, 1, "Butter", "dairy", 0),
		testutil.Line(2, 2, "Limes", "produce", 0),
	}

	r := AvgItemsPerOrder(lines)
	require.True(t, r.Valid)
	assert.InDelta(t, 2.0, r.Value, 1e-9)

	assert.False(t, AvgItemsPerOrder(nil).Valid)
}

func TestReorderRate(t *testing.T) {
	r := ReorderRate(exampleLines())
	require.True(t, r.Valid)
	assert.InDelta(t, 2.0/3.0, r.Value, 1e-9)

	assert.False(t, ReorderRate(nil).Valid)
}

func TestReorderRateByDepartment(t *testing.T) {
	lines := []model.OrderLine{
		testutil.Line(1, 1, "Milk", "dairy", 1),
		testutil.Line(1, 2, "Eggs", "dairy", 1),
		testutil.Line(2, 3, "Bananas", "produce", 1),
		testutil.Line(2, 4, "Limes", "produce", 0),
		testutil.Line(3, 5, "Bread", "bakery", 0),
	}

	stats := ReorderRateByDepartment(lines)
	require.Len(t, stats, 3)

	assert.Equal(t, "dairy", stats[0].Key)
	assert.InDelta(t, 1.0, stats[0].Value, 1e-9)
	assert.Equal(t, 2, stats[0].Count)

	assert.Equal(t, "produce", stats[1].Key)
	assert.InDelta(t, 0.5, stats[1].Value, 1e-9)

	assert.Equal(t, "bakery", stats[2].Key)
	assert.Zero(t, stats[2].Value)

	assert.Empty(t, ReorderRateByDepartment(nil))
}

func TestDepartmentCounts(t *testing.T) {
	lines := []model.OrderLine{
		testutil.Line(1, 1, "Bananas", "produce", 0),
		testutil.Line(1, 1, "Limes", "produce", 0),
		testutil.Line(1, 1, "Milk", "dairy", 0),
	}

	stats := DepartmentCounts(lines)
	require.Len(t, stats, 2)
	assert.Equal(t, GroupStat{Key: "produce", Value: 2, Count: 2}, stats[0])
	assert.Equal(t, GroupStat{Key: "dairy", Value: 1, Count: 1}, stats[1])
}

func TestUniqueValues(t *testing.T) {
	lines := []model.OrderLine{
		testutil.Line(1, 1, "Milk", "dairy", 0),
		testutil.Line(1, 2, "Bananas", "produce", 0),
		testutil.Line(2, 3, "Milk", "dairy", 0),
	}

	got := UniqueValues(lines, func(l model.OrderLine) string { return l.Department })
	assert.Equal(t, []string{"dairy", "produce"}, got, "first-appearance order")

	blank := []model.OrderLine{{Department: ""}}
	assert.Empty(t, UniqueValues(blank, func(l model.OrderLine) string { return l.Department }))
}
