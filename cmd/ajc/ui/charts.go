package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarDatum is one labeled value in a bar chart.
type BarDatum struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// BarChart renders a horizontal bar chart scaled to maxWidth columns.
// Zero-value data renders as an empty bar rather than disappearing.
func BarChart(data []BarDatum, maxWidth int) string {
	if len(data) == 0 {
		return ""
	}

	labelWidth := 0
	max := 0.0
	for _, d := range data {
		if len(d.Label) > labelWidth {
			labelWidth = len(d.Label)
		}
		if d.Value > max {
			max = d.Value
		}
	}

	var sb strings.Builder
	for _, d := range data {
		bar := 0
		if max > 0 {
			bar = int(d.Value / max * float64(maxWidth))
		}
		color := d.Color
		if color == "" {
			color = Navy
		}
		sb.WriteString(fmt.Sprintf("%-*s ", labelWidth, d.Label))
		sb.WriteString(lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", bar)))
		sb.WriteString(fmt.Sprintf(" %g\n", d.Value))
	}
	return sb.String()
}

// KPICard renders one stat card with an uppercase caption and a value.
func KPICard(styles Styles, caption, value string, accent lipgloss.Color) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Muted.Render(strings.ToUpper(caption)),
		styles.Bold.Foreground(accent).Render(value),
	)
	return styles.Card.BorderForeground(accent).Render(body)
}
