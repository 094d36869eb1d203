package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.On("FetchHeadlines", mock.Anything).Return(samplePage(), nil).Once()
	h := newHarness(t, fetcher)
	h.start()

	// 1. Initial State
	if h.m.state.Session != state.HomeView {
		t.Error("Initial state should be homeView")
	}

	// 2. Press 'q' -> Should go to quitView, not quit immediately
	h.key("q")
	if h.m.state.Session != state.QuitView {
		t.Error("Should switch to quitView on 'q'")
	}
	if h.quit {
		t.Error("Should not quit yet")
	}

	// 3. Press 'n' -> Should return to homeView
	h.key("n")
	if h.m.state.Session != state.HomeView {
		t.Error("Should return to homeView on 'n'")
	}

	// 4. Press 'q' then 'y' -> Should quit and unmount the home screen
	h.key("q")
	h.key("y")
	if !h.quit {
		t.Error("Should quit on 'y'")
	}
	if cmd := h.m.home.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Home screen should ignore input after quitting")
	}
	if h.nav.Current() != navigation.Home {
		t.Error("Rows should not navigate after quitting")
	}
	if _, ok := h.vm.SelectedNews(); ok {
		t.Error("Rows should not select after quitting")
	}
	if h.m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestQuitDialogFromDetail(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.On("FetchHeadlines", mock.Anything).Return(samplePage(), nil).Once()
	h := newHarness(t, fetcher)
	h.start()

	h.key("enter")
	h.key("q")
	if h.m.state.Session != state.QuitView || h.m.state.Previous != state.DetailView {
		t.Fatalf("session = %v previous = %v", h.m.state.Session, h.m.state.Previous)
	}
	h.key("n")
	if h.m.state.Session != state.DetailView {
		t.Error("Should return to detailView on 'n'")
	}
}

func TestForceQuit(t *testing.T) {
	fetcher := &stubFetcher{}
	fetcher.On("FetchHeadlines", mock.Anything).Return(samplePage(), nil).Once()
	h := newHarness(t, fetcher)
	h.start()

	h.key("ctrl+c")
	if !h.quit {
		t.Error("ctrl+c should quit immediately")
	}
}
