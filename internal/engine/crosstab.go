package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cartlens/cartlens/internal/model"
)

// CrossTab is a two-dimensional count table keyed by two categorical
// columns. Every observed row/column combination is present; missing
// combinations hold zero. An empty input yields an empty table.
type CrossTab struct {
	RowKeys []string
	ColKeys []string
	Cells   [][]int // Cells[row][col]
	Max     int     // largest cell value, for presenter scaling
}

// At returns the count for a row/column pair, or zero when either key
// is unknown.
func (ct CrossTab) At(row, col string) int {
	ri, ci := -1, -1
	for i, k := range ct.RowKeys {
		if k == row {
			ri = i
			break
		}
	}
	for i, k := range ct.ColKeys {
		if k == col {
			ci = i
			break
		}
	}
	if ri < 0 || ci < 0 {
		return 0
	}
	return ct.Cells[ri][ci]
}

// weekdayOrder positions recognized day names in calendar order.
var weekdayOrder = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

// DayHourCrossTab counts order lines by day-of-week (rows) and
// hour-of-day (columns).
func DayHourCrossTab(lines []model.OrderLine) CrossTab {
	return crossTab(lines,
		func(l model.OrderLine) string { return l.DayOfWeek },
		func(l model.OrderLine) string { return strconv.Itoa(l.HourOfDay) },
		sortDays, sortHours)
}

// ProductDayCrossTab counts order lines by product (rows) and
// day-of-week (columns). Rows are limited to the k most frequent
// products; k <= 0 keeps all.
func ProductDayCrossTab(lines []model.OrderLine, k int) CrossTab {
	top := TopProducts(lines, k)
	keep := make(map[string]bool, len(top))
	for _, c := range top {
		keep[c.Key] = true
	}
	kept := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		if keep[line.ProductName] {
			kept = append(kept, line)
		}
	}
	return crossTab(kept,
		func(l model.OrderLine) string { return l.ProductName },
		func(l model.OrderLine) string { return l.DayOfWeek },
		nil, sortDays)
}

func crossTab(lines []model.OrderLine, rowKey, colKey func(model.OrderLine) string, sortRows, sortCols func([]string)) CrossTab {
	counts := make(map[[2]string]int)
	var rows, cols []string
	rowSeen := make(map[string]bool)
	colSeen := make(map[string]bool)

	for _, line := range lines {
		r, c := rowKey(line), colKey(line)
		if !rowSeen[r] {
			rowSeen[r] = true
			rows = append(rows, r)
		}
		if !colSeen[c] {
			colSeen[c] = true
			cols = append(cols, c)
		}
		counts[[2]string{r, c}]++
	}

	if sortRows != nil {
		sortRows(rows)
	}
	if sortCols != nil {
		sortCols(cols)
	}

	ct := CrossTab{RowKeys: rows, ColKeys: cols}
	ct.Cells = make([][]int, len(rows))
	for i, r := range rows {
		ct.Cells[i] = make([]int, len(cols))
		for j, c := range cols {
			n := counts[[2]string{r, c}]
			ct.Cells[i][j] = n
			if n > ct.Max {
				ct.Max = n
			}
		}
	}
	return ct
}

// sortDays orders recognized weekday names in calendar order and leaves
// unrecognized labels in first-appearance order after them.
func sortDays(days []string) {
	pos := make(map[string]int, len(days))
	for i, d := range days {
		pos[d] = i
	}
	sort.SliceStable(days, func(i, j int) bool {
		wi, iOK := weekdayOrder[strings.ToLower(days[i])]
		wj, jOK := weekdayOrder[strings.ToLower(days[j])]
		switch {
		case iOK && jOK:
			return wi < wj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return pos[days[i]] < pos[days[j]]
		}
	})
}

// sortHours orders hour labels numerically, non-numeric labels last.
func sortHours(hours []string) {
	sort.SliceStable(hours, func(i, j int) bool {
		hi, iErr := strconv.Atoi(hours[i])
		hj, jErr := strconv.Atoi(hours[j])
		if iErr != nil || jErr != nil {
			return iErr == nil
		}
		return hi < hj
	})
}
