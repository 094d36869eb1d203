package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/viewmodel"
)

type stubFetcher struct {
	mock.Mock
}

func (s *stubFetcher) FetchHeadlines(ctx context.Context) (news.Page, error) {
	args := s.Called(ctx)
	page, _ := args.Get(0).(news.Page)
	return page, args.Error(1)
}

func testSettings() settings.Settings {
	return settings.Settings{
		Source: settings.SourceNewsAPI,
		NewsAPI: settings.NewsAPIConfig{
			Country:  "us",
			Category: "technology",
		},
		KeyMap: settings.KeyMapConfig{
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
		},
		Theme: settings.ThemeConfig{
			Accent:  "205",
			Muted:   "240",
			Glamour: "notty",
		},
	}
}

func samplePage() news.Page {
	return news.NewPage(3, []news.Item{
		{Title: "Alpha launches", Description: "First story", URL: "https://example.com/alpha", Source: "Alpha Times", Content: "Alpha body"},
		{Title: "Bravo merges", Description: "Second story", URL: "https://example.com/bravo", Source: "Bravo Daily"},
		{Title: "Charlie ships", Description: "Third story", URL: "https://example.com/charlie"},
	})
}

// harness drives a Model the way tea.Program does: commands run in
// goroutines and their messages are fed back through Update.
type harness struct {
	t      *testing.T
	m      *Model
	vm     *viewmodel.Home
	nav    *navigation.Navigator
	msgs   chan tea.Msg
	quit   bool
	opened []string
}

func newHarness(t *testing.T, fetcher *stubFetcher) *harness {
	t.Helper()
	h := &harness{
		t:    t,
		vm:   viewmodel.NewHome(fetcher, nil, nil),
		nav:  navigation.NewNavigator(navigation.Home),
		msgs: make(chan tea.Msg, 64),
	}
	h.m = NewModel(testSettings(), Deps{
		ViewModel: h.vm,
		Navigator: h.nav,
		OpenBrowser: func(url string) error {
			h.opened = append(h.opened, url)
			return nil
		},
	})
	t.Cleanup(func() {
		if !h.m.state.Quitting {
			h.m.teardown()
		}
	})
	return h
}

func (h *harness) start() {
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.run(h.m.Init())
	h.settle()
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() { h.msgs <- cmd() }()
}

func (h *harness) dispatch(msg tea.Msg) {
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, cmd := range msg {
			h.run(cmd)
		}
	case tea.QuitMsg:
		h.quit = true
	default:
		_, cmd := h.m.Update(msg)
		h.run(cmd)
	}
}

// settle processes messages until none arrive for a short while.
func (h *harness) settle() {
	for {
		select {
		case msg := <-h.msgs:
			h.dispatch(msg)
		case <-time.After(250 * time.Millisecond):
			return
		}
	}
}

func (h *harness) send(msg tea.Msg) {
	h.dispatch(msg)
	h.settle()
}

func (h *harness) key(k string) {
	switch k {
	case "enter":
		h.send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		h.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "ctrl+c":
		h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	default:
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}
