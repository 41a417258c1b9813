package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cartlens/cartlens/internal/cli"
	"github.com/cartlens/cartlens/internal/engine"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Padding(1, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(cli.SubtleColor).
			Padding(0, 2)

	errorStyle = lipgloss.NewStyle().
			Foreground(cli.ErrorColor).
			Padding(0, 2)
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render(m.renderBody()))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderBody() string {
	switch m.tab {
	case TabOverview:
		return m.renderOverview()
	case TabPatterns:
		return m.renderPatterns()
	case TabProducts:
		return m.renderProducts()
	case TabUsers:
		return m.renderUsers()
	case TabOrders:
		return m.renderOrders()
	default:
		return ""
	}
}

func (m Model) renderOverview() string {
	lines := m.filtered
	rows := []string{
		cli.Metric("Total Orders", cli.FormatInt(engine.UniqueOrders(lines))),
		cli.Metric("Total Users", cli.FormatInt(engine.UniqueUsers(lines))),
		cli.Metric("Unique Products", cli.FormatInt(engine.UniqueProducts(lines))),
		cli.Metric("Avg Products per Order", cli.FormatRatio(engine.AvgItemsPerOrder(lines))),
		cli.Metric("Overall Reorder Rate", cli.FormatPercent(engine.ReorderRate(lines))),
		cli.Metric("Avg Orders per Customer", cli.FormatRatio(engine.OrdersPerUser(lines))),
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPatterns() string {
	ct := engine.DayHourCrossTab(m.filtered)

	dayTotals := make([]engine.Count, 0, len(ct.RowKeys))
	for i, day := range ct.RowKeys {
		total := 0
		for j := range ct.ColKeys {
			total += ct.Cells[i][j]
		}
		dayTotals = append(dayTotals, engine.Count{Key: day, Count: total})
	}

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Orders by Day of Week"))
	b.WriteString("\n")
	b.WriteString(cli.BarChart(dayTotals))
	b.WriteString("\n")
	b.WriteString(cli.TitleStyle.Render("Order Heatmap by Day & Hour"))
	b.WriteString("\n")
	b.WriteString(cli.Heatmap(ct))
	return b.String()
}

func (m Model) renderProducts() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Top Ordered Products"))
	b.WriteString("\n")
	b.WriteString(cli.BarChart(engine.TopProducts(m.filtered, 10)))
	b.WriteString("\n")
	b.WriteString(cli.TitleStyle.Render("Reorder Rate by Department"))
	b.WriteString("\n")
	b.WriteString(cli.StatBarChart(engine.ReorderRateByDepartment(m.filtered), true))
	return b.String()
}

func (m Model) renderUsers() string {
	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render("Busiest Users"))
	b.WriteString("\n")
	b.WriteString(cli.BarChart(engine.TopUsers(m.filtered, 10)))
	return b.String()
}

func (m Model) renderOrders() string {
	limit := "all"
	if n := rowLimits[m.rowLimitIdx]; n >= 0 {
		limit = cli.FormatInt(n)
	}
	end := "top"
	if m.fromBottom {
		end = "bottom"
	}

	header := cli.SubtleStyle.Render(fmt.Sprintf("rows: %s · from: %s", limit, end))
	return header + "\n" + m.ordersTable.View()
}

func (m Model) renderStatus() string {
	if m.filtering {
		return statusStyle.Render("filter: ") + m.filterInput.View()
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%s / %s order lines",
		cli.FormatInt(len(m.filtered)), cli.FormatInt(len(m.lines))))
	if !m.filters.IsEmpty() {
		parts = append(parts, describeFilters(m.filters))
	}
	parts = append(parts, "/ filter · c clear · r rows · b top/bottom · tab switch · q quit")

	status := statusStyle.Render(strings.Join(parts, "  ·  "))
	if m.lastError != nil {
		status += "\n" + errorStyle.Render(m.lastError.Error())
	}
	return status
}

func describeFilters(f engine.Filters) string {
	var parts []string
	if len(f.Departments) > 0 {
		parts = append(parts, "department: "+strings.Join(f.Departments, "|"))
	}
	if len(f.Aisles) > 0 {
		parts = append(parts, "aisle: "+strings.Join(f.Aisles, "|"))
	}
	if len(f.Products) > 0 {
		parts = append(parts, "product: "+strings.Join(f.Products, "|"))
	}
	return strings.Join(parts, " ")
}
