package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solflow/dcadash/internal/dashboard/themes"
	"github.com/solflow/dcadash/internal/query"
)

// VolumeChartModel renders a bucket series as a horizontal bar chart, one
// row per bucket, oldest first.
type VolumeChartModel struct {
	theme  themes.Theme
	series query.BucketSeries
	title  string
	width  int
	height int
}

// NewVolumeChart creates a volume chart.
func NewVolumeChart(theme themes.Theme, title string) VolumeChartModel {
	return VolumeChartModel{
		theme:  theme,
		title:  title,
		width:  40,
		height: 20,
	}
}

// SetSeries replaces the displayed series.
func (m *VolumeChartModel) SetSeries(series query.BucketSeries) {
	m.series = series
}

// Resize updates the component size.
func (m *VolumeChartModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the chart. Buckets beyond the available height are dropped
// from the top so the most recent buckets stay visible.
func (m VolumeChartModel) View() string {
	title := m.theme.Subtitle.Render(m.title)

	if len(m.series.Values) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.Normal.Render("no data"))
	}

	labelWidth := 0
	maxValue := 0.0
	for i, v := range m.series.Values {
		if v > maxValue {
			maxValue = v
		}
		if len(m.series.Labels[i]) > labelWidth {
			labelWidth = len(m.series.Labels[i])
		}
	}

	// Label, space, bar, space, value.
	barWidth := m.width - labelWidth - 12
	if barWidth < 5 {
		barWidth = 5
	}

	start := 0
	visible := m.height - 2
	if visible > 0 && len(m.series.Values) > visible {
		start = len(m.series.Values) - visible
	}

	lines := make([]string, 0, len(m.series.Values)-start)
	for i := start; i < len(m.series.Values); i++ {
		v := m.series.Values[i]

		barLen := 0
		if maxValue > 0 {
			barLen = int(v / maxValue * float64(barWidth))
		}
		if v > 0 && barLen == 0 {
			barLen = 1
		}

		bar := m.theme.ChartBar.Render(strings.Repeat("█", barLen)) +
			m.theme.ChartEmpty.Render(strings.Repeat("░", barWidth-barLen))

		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth,
			m.series.Labels[i],
			bar,
			formatValue(v),
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}

// formatValue keeps bar rows narrow: whole numbers for large sums, two
// decimals otherwise.
func formatValue(v float64) string {
	if v >= 1000 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
