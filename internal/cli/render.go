package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/cartlens/cartlens/internal/engine"
)

// defaultBarWidth is the widest a chart bar may grow.
const defaultBarWidth = 40

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatRatio renders a derived ratio metric, or "no data" when the
// denominator was zero.
func FormatRatio(r engine.Ratio) string {
	if !r.Valid {
		return SubtleStyle.Render("no data")
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// FormatPercent renders a ratio as a percentage, or "no data" when the
// denominator was zero.
func FormatPercent(r engine.Ratio) string {
	if !r.Valid {
		return SubtleStyle.Render("no data")
	}
	return fmt.Sprintf("%.2f%%", r.Value*100)
}

// Metric renders a labeled metric on one line.
func Metric(label, value string) string {
	return MetricLabelStyle.Render(label+": ") + MetricValueStyle.Render(value)
}

// BarChart renders a horizontal bar chart of counts. Bars scale so the
// largest entry fills defaultBarWidth cells; every non-zero entry gets
// at least one cell.
func BarChart(entries []engine.Count) string {
	if len(entries) == 0 {
		return SubtleStyle.Render("no data")
	}

	max := 0
	labelWidth := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
		if len(e.Key) > labelWidth {
			labelWidth = len(e.Key)
		}
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, e.Key))
		b.WriteString(BarStyle.Render(strings.Repeat("█", barLength(e.Count, max))))
		b.WriteString(" " + FormatInt(e.Count))
		b.WriteString("\n")
	}
	return b.String()
}

// StatBarChart renders group statistics (rates, means) as a bar chart
// with the value printed to two decimals.
func StatBarChart(stats []engine.GroupStat, percent bool) string {
	if len(stats) == 0 {
		return SubtleStyle.Render("no data")
	}

	var max float64
	labelWidth := 0
	for _, s := range stats {
		if s.Value > max {
			max = s.Value
		}
		if len(s.Key) > labelWidth {
			labelWidth = len(s.Key)
		}
	}

	var b strings.Builder
	for _, s := range stats {
		length := 0
		if max > 0 {
			length = int(s.Value / max * defaultBarWidth)
			if length == 0 && s.Value > 0 {
				length = 1
			}
		}
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, s.Key))
		b.WriteString(BarStyle.Render(strings.Repeat("█", length)))
		if percent {
			b.WriteString(fmt.Sprintf(" %.2f%%", s.Value*100))
		} else {
			b.WriteString(fmt.Sprintf(" %.2f", s.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func barLength(count, max int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	length := count * defaultBarWidth / max
	if length == 0 {
		length = 1
	}
	return length
}

// heatShades maps cell intensity to block characters, lightest first.
var heatShades = []string{"·", "░", "▒", "▓", "█"}

// Heatmap renders a cross-tabulation as a shaded grid with row and
// column labels. An empty table renders as "no data".
func Heatmap(ct engine.CrossTab) string {
	if len(ct.RowKeys) == 0 || len(ct.ColKeys) == 0 {
		return SubtleStyle.Render("no data")
	}

	labelWidth := 0
	for _, r := range ct.RowKeys {
		if len(r) > labelWidth {
			labelWidth = len(r)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth+1))
	for _, c := range ct.ColKeys {
		b.WriteString(fmt.Sprintf("%2s ", c))
	}
	b.WriteString("\n")

	for i, r := range ct.RowKeys {
		b.WriteString(fmt.Sprintf("%-*s ", labelWidth, r))
		for j := range ct.ColKeys {
			b.WriteString(" " + heatShade(ct.Cells[i][j], ct.Max) + " ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func heatShade(count, max int) string {
	if count == 0 || max == 0 {
		return SubtleStyle.Render(heatShades[0])
	}
	idx := 1 + count*(len(heatShades)-2)/max
	if idx >= len(heatShades) {
		idx = len(heatShades) - 1
	}
	return BarStyle.Render(heatShades[idx])
}

// CrossTabTable renders a cross-tabulation with raw counts through a
// tabwriter.
func CrossTabTable(ct engine.CrossTab) string {
	if len(ct.RowKeys) == 0 || len(ct.ColKeys) == 0 {
		return SubtleStyle.Render("no data")
	}

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "\t")
	for _, c := range ct.ColKeys {
		fmt.Fprintf(w, "%s\t", TableHeaderStyle.Render(c))
	}
	fmt.Fprintln(w)

	for i, r := range ct.RowKeys {
		fmt.Fprintf(w, "%s\t", r)
		for j := range ct.ColKeys {
			fmt.Fprintf(w, "%d\t", ct.Cells[i][j])
		}
		fmt.Fprintln(w)
	}

	_ = w.Flush()
	return b.String()
}
