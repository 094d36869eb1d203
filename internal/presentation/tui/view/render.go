// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	"github.com/tesso57/headlines/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/headlines/internal/presentation/tui/components/main"
	"github.com/tesso57/headlines/internal/presentation/tui/components/modal"
)

// Props aggregates properties for all UI components.
type Props struct {
	Header header.Props
	Main   mainview.Props
	Modal  modal.Props
	Footer string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	if head := header.Render(p.Header); head != "" {
		p.Main.Body = lipgloss.JoinVertical(lipgloss.Left, head, p.Main.Body)
	}
	mainStr := mainview.Render(p.Main)

	return layout.Render(layout.Props{
		Main:   mainStr,
		Footer: p.Footer,
	})
}
