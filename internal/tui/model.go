// Package tui implements the interactive full-screen dashboard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cartlens/cartlens/internal/engine"
	"github.com/cartlens/cartlens/internal/model"
)

// Tab identifies a dashboard section.
type Tab int

const (
	TabOverview Tab = iota
	TabPatterns
	TabProducts
	TabUsers
	TabOrders
)

var tabNames = []string{"Overview", "Patterns", "Products", "Users", "Orders"}

// rowLimits are the selectable page sizes for the orders table;
// -1 means all rows.
var rowLimits = []int{10, 50, 100, 500, 1000, -1}

// Model holds the dashboard state. The full dataset is loaded once; the
// filter-then-aggregate pipeline re-runs on every filter change.
type Model struct {
	lastError   error
	filterInput textinput.Model
	lines       []model.OrderLine
	filtered    []model.OrderLine
	ordersTable table.Model
	keymap      KeyMap
	filters     engine.Filters
	tab         Tab
	rowLimitIdx int
	width       int
	height      int
	fromBottom  bool
	filtering   bool
	quitting    bool
}

func newModel(lines []model.OrderLine) Model {
	input := textinput.New()
	input.Placeholder = "department=dairy, aisle=fresh fruits, product=Milk"
	input.CharLimit = 120

	m := Model{
		lines:       lines,
		keymap:      DefaultKeyMap(),
		filterInput: input,
		ordersTable: newOrdersTable(),
	}
	m.refresh()
	return m
}

func newOrdersTable() table.Model {
	columns := []table.Column{
		{Title: "User", Width: 8},
		{Title: "Order", Width: 8},
		{Title: "Product", Width: 28},
		{Title: "Department", Width: 14},
		{Title: "Aisle", Width: 18},
		{Title: "Reordered", Width: 9},
		{Title: "Hour", Width: 4},
		{Title: "Day", Width: 10},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ordersTable.SetHeight(max(5, m.height-10))
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilterInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m, nil

	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m, nil

	case key.Matches(msg, m.keymap.Filter):
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.ClearFilter):
		m.filters = engine.Filters{}
		m.lastError = nil
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CycleRows):
		m.rowLimitIdx = (m.rowLimitIdx + 1) % len(rowLimits)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.ToggleEnd):
		m.fromBottom = !m.fromBottom
		m.refresh()
		return m, nil
	}

	if m.tab == TabOrders {
		var cmd tea.Cmd
		m.ordersTable, cmd = m.ordersTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil

	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		if err := m.applyFilterExpression(m.filterInput.Value()); err != nil {
			m.lastError = err
		} else {
			m.lastError = nil
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// applyFilterExpression adds selections from a comma-separated list of
// column=value pairs. An empty expression leaves the filters untouched.
func (m *Model) applyFilterExpression(expr string) error {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil
	}

	for _, pair := range strings.Split(expr, ",") {
		column, value, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid filter %q (want column=value)", strings.TrimSpace(pair))
		}
		column = strings.ToLower(strings.TrimSpace(column))
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("empty value for filter column %q", column)
		}

		switch column {
		case "department":
			m.filters.Departments = append(m.filters.Departments, value)
		case "aisle":
			m.filters.Aisles = append(m.filters.Aisles, value)
		case "product":
			m.filters.Products = append(m.filters.Products, value)
		default:
			return fmt.Errorf("unknown filter column %q (want department, aisle, or product)", column)
		}
	}
	return nil
}

// refresh re-runs the filter pipeline and rebuilds the orders table.
func (m *Model) refresh() {
	m.filtered = m.filters.Apply(m.lines)

	page := m.visibleRows()
	rows := make([]table.Row, 0, len(page))
	for _, line := range page {
		rows = append(rows, table.Row{
			strconv.FormatInt(line.UserID, 10),
			strconv.FormatInt(line.OrderID, 10),
			line.ProductName,
			line.Department,
			line.Aisle,
			strconv.Itoa(line.Reordered),
			strconv.Itoa(line.HourOfDay),
			line.DayOfWeek,
		})
	}
	m.ordersTable.SetRows(rows)
	m.ordersTable.GotoTop()
}

// visibleRows slices the filtered dataset to the current row limit,
// from the top or the bottom.
func (m *Model) visibleRows() []model.OrderLine {
	limit := rowLimits[m.rowLimitIdx]
	if limit < 0 || limit >= len(m.filtered) {
		return m.filtered
	}
	if m.fromBottom {
		return m.filtered[len(m.filtered)-limit:]
	}
	return m.filtered[:limit]
}
