// Package tui provides the main user interface model and view components.
package tui

import (
	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/headlines/internal/presentation/tui/components/main"
	"github.com/tesso57/headlines/internal/presentation/tui/components/modal"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
)

// headerPrefixWidth covers the icon and spaces before header text.
const headerPrefixWidth = 4

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header: m.buildHeaderProps(),
		Main:   m.buildMainProps(),
		Modal:  m.buildModalProps(),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	width := m.state.Width - metrics.MainPaddingLeft - headerPrefixWidth
	label := "Top headlines"
	if m.state.Session == state.DetailView && m.detail != nil {
		item := m.detail.Item()
		label = item.Source
		if label == "" {
			label = item.Title
		}
	}
	return header.Props{
		Visible: true,
		Source:  headerLine(m.settings.SourceLabel(), width),
		Context: headerLine(label, width),
		Color:   m.settings.Theme.Muted,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	layout := update.ComputeLayout(m.state)

	var body string
	switch {
	case m.state.Session == state.DetailView && m.detail != nil:
		body = m.detail.View()
	default:
		body = m.home.View()
	}

	return mainview.Props{
		Width:  m.state.Width,
		Height: layout.BodyHeight + metrics.HeaderLines,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.FullHelpView(m.state.Keys.FullHelp()),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.ShortHelpView(m.state.Keys.ShortHelp())
	return state.FooterText(m.state.Session, m.state.StatusMessage, helpText)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
