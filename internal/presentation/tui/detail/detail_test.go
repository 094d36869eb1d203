package detail

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

type recordingNavigator struct {
	screens []navigation.Screen
}

func (r *recordingNavigator) UpdateScreenState(screen navigation.Screen) {
	r.screens = append(r.screens, screen)
}

func testKeys() state.KeyMap {
	return state.NewKeyMap(settings.KeyMapConfig{
		Up:       "k,up",
		Down:     "j,down",
		UpPage:   "ctrl+u,pgup",
		DownPage: "ctrl+d,pgdown",
		Top:      "g,home",
		Bottom:   "G,end",
		Open:     "enter,l",
		Back:     "esc,h",
		Browser:  "o",
		Quit:     "q",
	})
}

func sampleItem() news.Item {
	return news.Item{
		Title:       "Go 1.26 released",
		Description: "The latest Go release is out.",
		URL:         "https://go.dev/blog/go1.26",
		Source:      "The Go Blog",
		Author:      "The Go Team",
		Content:     "Today the Go team is happy to release Go 1.26. [+1520 chars]",
		PublishedAt: time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleItem())

	assert.True(t, strings.HasPrefix(md, "# Go 1.26 released\n"))
	assert.Contains(t, md, "The Go Blog · The Go Team")
	assert.Contains(t, md, "> The latest Go release is out.")
	assert.Contains(t, md, "happy to release Go 1.26.")
	assert.NotContains(t, md, "[+1520 chars]")
	assert.Contains(t, md, "[Read the full article](https://go.dev/blog/go1.26)")
}

func TestMarkdown_MissingFields(t *testing.T) {
	md := Markdown(news.Item{})

	assert.Contains(t, md, "# (untitled)")
	assert.Contains(t, md, "No article body available")
	assert.NotContains(t, md, "Read the full article")
	assert.NotContains(t, md, "> ")
}

func TestRender_PlainStyle(t *testing.T) {
	out := ansi.Strip(Render(Markdown(sampleItem()), 60, "notty"))

	assert.Contains(t, out, "Go 1.26 released")
	assert.Contains(t, out, "The latest Go release is out.")
}

func TestScreen_BackNavigatesHome(t *testing.T) {
	nav := &recordingNavigator{}
	s := New(sampleItem(), nav, Options{Keys: testKeys(), Style: "notty"})
	s.SetSize(80, 20)

	cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, []navigation.Screen{navigation.Home}, nav.screens)
}

func TestScreen_View(t *testing.T) {
	s := New(sampleItem(), &recordingNavigator{}, Options{Keys: testKeys(), Style: "notty"})
	s.SetSize(80, 20)

	view := ansi.Strip(s.View())
	assert.Contains(t, view, "Go 1.26 released")
	assert.Equal(t, sampleItem(), s.Item())
}

func TestScreen_OpenInBrowser(t *testing.T) {
	var opened []string
	s := New(sampleItem(), &recordingNavigator{}, Options{
		Keys: testKeys(),
		OpenBrowser: func(url string) error {
			opened = append(opened, url)
			return nil
		},
	})

	cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	require.NotNil(t, cmd)

	msg, ok := cmd().(BrowserOpenedMsg)
	require.True(t, ok)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "https://go.dev/blog/go1.26", msg.URL)
	assert.Equal(t, []string{"https://go.dev/blog/go1.26"}, opened)
}

func TestScreen_OpenInBrowserErrors(t *testing.T) {
	t.Run("no link", func(t *testing.T) {
		s := New(news.Item{Title: "x"}, &recordingNavigator{}, Options{
			Keys:        testKeys(),
			OpenBrowser: func(string) error { return nil },
		})
		msg := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})().(BrowserOpenedMsg)
		assert.ErrorIs(t, msg.Err, ErrNoLink)
	})

	t.Run("open fails", func(t *testing.T) {
		boom := errors.New("boom")
		s := New(sampleItem(), &recordingNavigator{}, Options{
			Keys:        testKeys(),
			OpenBrowser: func(string) error { return boom },
		})
		msg := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})().(BrowserOpenedMsg)
		assert.ErrorIs(t, msg.Err, boom)
	})
}
