package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
)

func rowStyle(styles RowStyles, m list.Model, index int) lipgloss.Style {
	if index == m.Index() {
		return styles.Selected
	}
	return styles.Normal
}

func textWidth(m list.Model, style lipgloss.Style) int {
	return m.Width() - style.GetHorizontalFrameSize() -
		metrics.ThumbnailWidth - metrics.ThumbnailGap -
		metrics.ItemRightPadding - metrics.ItemSafetyPadding
}

func renderRow(w io.Writer, style lipgloss.Style, lines []string) {
	_, _ = io.WriteString(w, style.Render(strings.Join(lines, "\n")))
}
