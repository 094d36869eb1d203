// Package update holds app-level update logic for the TUI. Screen-local
// input is handled by the screens.
package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/headlines/internal/presentation/tui/intent"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// HandleKeyMsg processes app-level keys. It reports false when the key
// belongs to the active screen.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		s.Quitting = true
		return tea.Quit, true
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll {
		// The help modal swallows everything except its toggle and quit.
		switch parsed.Type {
		case intent.ToggleHelp, intent.Back:
			s.Help.ShowAll = false
		case intent.Quit:
			s.Help.ShowAll = false
			enterQuitView(s)
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		enterQuitView(s)
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	default:
		return nil, false
	}
}

func enterQuitView(s *state.ModelState) {
	s.Previous = s.Session
	s.Session = state.QuitView
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y", "enter":
		s.Quitting = true
		return tea.Quit, true
	case "n", "N", "esc", "q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) Layout {
	s.Width = msg.Width
	s.Height = msg.Height
	return ComputeLayout(s)
}
