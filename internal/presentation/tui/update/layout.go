package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// Layout is the space available to the active screen.
type Layout struct {
	// BodyWidth and BodyHeight exclude the header, footer and main padding.
	BodyWidth  int
	BodyHeight int
	// BodyTop is the terminal row where the screen body starts.
	BodyTop int
}

// ComputeLayout derives the screen body size from the terminal size.
func ComputeLayout(s *state.ModelState) Layout {
	if s.Width <= 0 || s.Height <= 0 {
		return Layout{BodyWidth: 1, BodyHeight: 1, BodyTop: metrics.HeaderLines}
	}
	available := clampMin(s.Height-FooterHeight(s), 1)
	return Layout{
		BodyWidth:  clampMin(s.Width-metrics.MainPaddingLeft, 1),
		BodyHeight: clampMin(available-metrics.HeaderLines, 1),
		BodyTop:    metrics.HeaderLines,
	}
}

// FooterHeight returns the rendered height of the footer.
func FooterHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.StatusMessage, s.Help.ShortHelpView(s.Keys.ShortHelp())))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
