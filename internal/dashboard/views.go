package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solflow/dcadash/internal/query"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready || m.width == 0 {
		return m.config.Theme.Subtitle.Render("Loading orders...")
	}
	if m.showHelp {
		return m.helpView()
	}

	sections := []string{
		m.headerView(),
		m.filterBarView(),
		m.bodyView(),
		m.footerView(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// headerView renders the title line and the window tabs.
func (m Model) headerView() string {
	theme := m.config.Theme

	tabs := make([]string, 0, 3)
	for _, w := range []query.Window{query.WindowAll, query.WindowNextHour, query.WindowNextDay} {
		style := theme.TabInactive
		if w == m.window {
			style = theme.TabActive
		}
		tabs = append(tabs, style.Render(w.String()))
	}

	title := theme.Title.Render("DCA Orders")
	count := theme.Subtitle.Render(fmt.Sprintf("  %d shown / %d fetched", len(m.visible), len(m.orders)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, count),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

// filterBarView renders the active filter state: the two text inputs plus
// the mint selectors.
func (m Model) filterBarView() string {
	theme := m.config.Theme

	parts := []string{
		theme.Subtitle.Render("search: ") + m.searchInput.View(),
		theme.Subtitle.Render("user: ") + m.userInput.View(),
		theme.Subtitle.Render("in: ") + theme.Bold.Render(selectorLabel(m.inputMints, m.inputMintIdx)),
		theme.Subtitle.Render("out: ") + theme.Bold.Render(selectorLabel(m.outputMints, m.outputMintIdx)),
	}

	return theme.Box.Render(strings.Join(parts, theme.Subtitle.Render("  │  ")))
}

// bodyView lays out the table and the chart, side by side on wide
// terminals and stacked otherwise.
func (m Model) bodyView() string {
	theme := m.config.Theme

	table := lipgloss.JoinVertical(
		lipgloss.Left,
		m.orderTable.View(),
		m.pagerView(),
	)

	chart := theme.BorderedBox.Render(m.chart.View())

	if m.width > 110 {
		return lipgloss.JoinHorizontal(lipgloss.Top, table, " ", chart)
	}
	return lipgloss.JoinVertical(lipgloss.Left, table, chart)
}

// pagerView renders the page dots with a numeric position.
func (m Model) pagerView() string {
	if len(m.visible) == 0 {
		return m.config.Theme.Subtitle.Render("no matching orders")
	}
	position := fmt.Sprintf(" page %d/%d", m.pager.Page+1, m.pager.TotalPages)
	return m.pager.View() + m.config.Theme.Subtitle.Render(position)
}

// footerView renders the error notice, if any, and the short key hints.
func (m Model) footerView() string {
	theme := m.config.Theme

	hints := m.help.ShortHelpView(m.keymap.ShortHelp())

	if m.lastErr != nil {
		notice := theme.StatusError.Render("⚠ refresh failed, showing cached orders: " + m.lastErr.Error())
		return lipgloss.JoinVertical(lipgloss.Left, notice, hints)
	}

	return hints
}

// helpView renders the full-screen key binding reference.
func (m Model) helpView() string {
	theme := m.config.Theme
	return theme.Box.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Title.Render("Key Bindings"),
		m.help.FullHelpView(m.keymap.FullHelp()),
		"",
		theme.Subtitle.Render("press ? to close"),
	))
}

// selectorLabel shows the chosen mint, or "any" when unconstrained.
func selectorLabel(mints []string, idx int) string {
	if idx < 0 || idx >= len(mints) {
		return "any"
	}
	return mints[idx]
}
