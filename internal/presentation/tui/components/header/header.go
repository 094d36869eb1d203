// Package header provides the module header component.
package header

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible bool
	Source  string
	Context string
	Color   string
}

// Render renders the header component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	color := p.Color
	if color == "" {
		color = "240"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(fmt.Sprintf("📰 %s\n🏷️  %s", p.Source, p.Context))
}
