// Package detail implements the article detail screen.
package detail

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// ErrNoLink is reported when the article has no URL to open.
var ErrNoLink = errors.New("article has no link")

// Navigator receives screen transitions.
type Navigator interface {
	UpdateScreenState(screen navigation.Screen)
}

// BrowserOpenedMsg reports the result of opening the article link.
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// Options configures a Screen.
type Options struct {
	Keys        state.KeyMap
	Style       string
	OpenBrowser func(string) error
}

// Screen shows one article in a scrollable viewport.
type Screen struct {
	item        news.Item
	nav         Navigator
	keys        state.KeyMap
	style       string
	openBrowser func(string) error

	viewport viewport.Model
	width    int
}

// New creates a detail screen for item.
func New(item news.Item, nav Navigator, opts Options) *Screen {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().PaddingRight(1)
	return &Screen{
		item:        item,
		nav:         nav,
		keys:        opts.Keys,
		style:       opts.Style,
		openBrowser: opts.OpenBrowser,
		viewport:    vp,
	}
}

// Item returns the article shown.
func (s *Screen) Item() news.Item {
	return s.item
}

// SetSize resizes the viewport. The document is re-rendered only when the
// width changes.
func (s *Screen) SetSize(width, height int) {
	s.viewport.Width = width
	s.viewport.Height = height
	if width != s.width {
		s.width = width
		s.viewport.SetContent(Render(Markdown(s.item), width-1, s.style))
	}
}

// Update handles messages for the screen.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keys.Back):
			s.nav.UpdateScreenState(navigation.Home)
			return nil
		case key.Matches(msg, s.keys.Browser):
			return s.openCmd()
		case key.Matches(msg, s.keys.Top):
			s.viewport.GotoTop()
			return nil
		case key.Matches(msg, s.keys.Bottom):
			s.viewport.GotoBottom()
			return nil
		}
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

func (s *Screen) openCmd() tea.Cmd {
	url := strings.TrimSpace(s.item.URL)
	open := s.openBrowser
	return func() tea.Msg {
		if url == "" {
			return BrowserOpenedMsg{Err: ErrNoLink}
		}
		if open == nil {
			return BrowserOpenedMsg{URL: url, Err: errors.New("no browser configured")}
		}
		return BrowserOpenedMsg{URL: url, Err: open(url)}
	}
}

// View renders the viewport.
func (s *Screen) View() string {
	return s.viewport.View()
}
