// Package ui provides the visual styling for the AJC portal TUI, built on
// the AJC brand palette (navy and red) with semantic status colors.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// AJC brand palette.
var (
	Navy   = lipgloss.Color("#003366") // primary brand blue
	Red    = lipgloss.Color("#CC0000") // accent red
	Slate  = lipgloss.Color("#64748B")
	White  = lipgloss.Color("#FFFFFF")
	Gray   = lipgloss.Color("#9CA3AF")
	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#EAB308")
	Blue   = lipgloss.Color("#2563EB")
)

// Styles holds the reusable lipgloss styles for the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Bold     lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	CardNote lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ModalBox lipgloss.Style
	Input    lipgloss.Style
}

// NewStyles builds the default style set.
func NewStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Navy),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(White).Background(Navy).Padding(0, 1),
		Bold:     lipgloss.NewStyle().Bold(true),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(Gray),
		Error:    lipgloss.NewStyle().Foreground(Red),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Navy).Padding(0, 2),
		CardNote: lipgloss.NewStyle().Foreground(Gray).Italic(true),

		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(White).Background(Navy).Padding(0, 2),
		TabInactive: lipgloss.NewStyle().Foreground(Gray).Padding(0, 2),

		ModalBox: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(Red).Padding(1, 2),
		Input:    lipgloss.NewStyle().Foreground(Navy),
	}
}

// StatusColor maps a shipment status to its display color, matching the
// web frontend's badge colors.
func StatusColor(status types.ShipmentStatus) lipgloss.Color {
	switch status {
	case types.StatusInTransit:
		return Blue
	case types.StatusDelivered:
		return Green
	case types.StatusCustoms:
		return Yellow
	case types.StatusPending:
		return Gray
	default:
		return Gray
	}
}

// StatusBadge renders a colored status label.
func StatusBadge(status types.ShipmentStatus) string {
	return lipgloss.NewStyle().Foreground(StatusColor(status)).Bold(true).Render(string(status))
}
