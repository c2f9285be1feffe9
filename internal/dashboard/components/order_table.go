// Package components holds the dashboard's presentation widgets. Widgets
// render already-computed rows and series; the pipeline logic lives in the
// query package.
package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/solflow/dcadash/internal/dashboard/themes"
	"github.com/solflow/dcadash/internal/model"
	"github.com/solflow/dcadash/internal/query"
)

// Columns shown in the order table, in display order. Each maps to the sort
// field applied when the column is selected and sorted.
var tableColumns = []struct {
	title string
	field query.Field
	ratio float64
	min   int
}{
	{"User", query.FieldUser, 0.24, 12},
	{"Pair", query.FieldTokenPair, 0.14, 9},
	{"Amount", query.FieldAmount, 0.12, 10},
	{"Frequency", query.FieldFrequency, 0.12, 9},
	{"Created", query.FieldCreatedAt, 0.17, 11},
	{"Executes", query.FieldExecuteAt, 0.17, 11},
}

// ColumnCount is the number of table columns a column cursor can address.
const ColumnCount = 6

// ColumnField maps a column index to its sort field.
func ColumnField(col int) query.Field {
	if col < 0 || col >= len(tableColumns) {
		return ""
	}
	return tableColumns[col].field
}

// OrderTableModel renders one page of orders with sort indicators.
type OrderTableModel struct {
	theme       themes.Theme
	table       table.Model
	sort        query.SortConfig
	selectedCol int
	width       int
	height      int
}

// NewOrderTable creates an order table.
func NewOrderTable(theme themes.Theme) OrderTableModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	m := OrderTableModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 20,
	}
	m.updateColumns()

	return m
}

// SetPage replaces the displayed rows with one page of orders.
func (m *OrderTableModel) SetPage(orders []model.Order) {
	rows := make([]table.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, table.Row{
			truncate(o.User, 24),
			o.TokenPair(),
			fmt.Sprintf("%.2f", o.Amount),
			o.Frequency,
			o.CreatedAt.Format("Jan 02 15:04"),
			o.ExecuteAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// SetSort records the active sort so the header can carry an indicator.
func (m *OrderTableModel) SetSort(cfg query.SortConfig) {
	m.sort = cfg
	m.updateColumns()
}

// SetSelectedColumn moves the column cursor used to pick a sort target.
func (m *OrderTableModel) SetSelectedColumn(col int) {
	m.selectedCol = col
	m.updateColumns()
}

// MoveCursor shifts the row cursor by delta within the current page.
func (m *OrderTableModel) MoveCursor(delta int) {
	if delta < 0 {
		m.table.MoveUp(-delta)
	} else {
		m.table.MoveDown(delta)
	}
}

// View renders the table.
func (m OrderTableModel) View() string {
	return m.table.View()
}

// Resize updates the component size.
func (m *OrderTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(1, height))
	m.updateColumns()
}

// updateColumns recomputes widths and header decorations. The sorted column
// carries a direction arrow; the selected column is bracketed so the sort
// target is visible before a sort is applied.
func (m *OrderTableModel) updateColumns() {
	availableWidth := m.width - 4
	if availableWidth < 64 {
		availableWidth = 64
	}

	columns := make([]table.Column, 0, len(tableColumns))
	for i, c := range tableColumns {
		title := c.title
		if m.sort.Field == c.field {
			switch m.sort.Direction {
			case query.DirectionAsc:
				title += " ↑"
			case query.DirectionDesc:
				title += " ↓"
			}
		}
		if i == m.selectedCol {
			title = "[" + title + "]"
		}
		columns = append(columns, table.Column{
			Title: title,
			Width: max(c.min, int(float64(availableWidth)*c.ratio)),
		})
	}

	m.table.SetColumns(columns)
}

// truncate shortens a string for a fixed-width cell.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
