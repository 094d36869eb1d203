// Package mainview provides the main content area component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Body   string
}

// Render places the body in a fixed-size area. Lines past Height are
// clipped so the footer below keeps its place.
func Render(p Props) string {
	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		PaddingLeft(metrics.MainPaddingLeft).
		Render(p.Body)
}
