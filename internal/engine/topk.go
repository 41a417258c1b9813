package engine

import (
	"sort"
	"strconv"

	"github.com/cartlens/cartlens/internal/model"
)

// Count is one entry of a frequency table.
type Count struct {
	Key   string
	Count int
}

// TopK returns the k most frequent values of the selected column,
// descending by count. Ties keep first-appearance order. When k exceeds
// the number of distinct values, or k <= 0, every distinct value is
// returned.
func TopK(lines []model.OrderLine, k int, value func(model.OrderLine) string) []Count {
	counts := make(map[string]int)
	var order []string
	for _, line := range lines {
		v := value(line)
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	table := make([]Count, 0, len(order))
	for _, key := range order {
		table = append(table, Count{Key: key, Count: counts[key]})
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].Count > table[j].Count })

	if k > 0 && len(table) > k {
		table = table[:k]
	}
	return table
}

// TopProducts returns the k most ordered products.
func TopProducts(lines []model.OrderLine, k int) []Count {
	return TopK(lines, k, func(l model.OrderLine) string { return l.ProductName })
}

// TopUsers returns the k users with the most order lines.
func TopUsers(lines []model.OrderLine, k int) []Count {
	return TopK(lines, k, func(l model.OrderLine) string {
		return strconv.FormatInt(l.UserID, 10)
	})
}

// TopReorderedProducts returns the k most reordered products, counting
// only lines flagged as reorders.
func TopReorderedProducts(lines []model.OrderLine, k int) []Count {
	reordered := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		if line.Reordered == 1 {
			reordered = append(reordered, line)
		}
	}
	return TopProducts(reordered, k)
}
