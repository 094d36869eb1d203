// Package viewmodel owns screen state and commands outside the TUI.
package viewmodel

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/observable"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

// HeadlinesFetcher fetches one page of headlines.
type HeadlinesFetcher interface {
	FetchHeadlines(ctx context.Context) (news.Page, error)
}

// ReadingRecorder persists opened articles.
type ReadingRecorder interface {
	RecordOpened(item news.Item) error
	OpenedKeys() (map[string]bool, error)
}

// Home is the home screen view-model. It is the only writer of the home
// state and of the current selection.
type Home struct {
	headlines HeadlinesFetcher
	reading   ReadingRecorder
	log       logrus.FieldLogger

	viewState *observable.Value[state.HomeState]

	mu       sync.RWMutex
	selected *news.Item

	writes sync.WaitGroup
}

// NewHome creates a Home view-model in the Init state.
func NewHome(headlines HeadlinesFetcher, reading ReadingRecorder, log logrus.FieldLogger) *Home {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Home{
		headlines: headlines,
		reading:   reading,
		log:       log.WithField("component", "home-viewmodel"),
		viewState: observable.NewValue[state.HomeState](state.Init{}),
	}
}

// ViewState exposes the observable home state.
func (h *Home) ViewState() *observable.Value[state.HomeState] {
	return h.viewState
}

// GetNews publishes Loading, fetches, then publishes Success or Failure.
// It blocks until the fetch resolves and is meant to run off the UI loop.
func (h *Home) GetNews(ctx context.Context) {
	h.viewState.Set(state.Loading{})

	page, err := h.headlines.FetchHeadlines(ctx)
	if err != nil {
		h.log.WithError(err).Warn("showing failure state")
		h.viewState.Set(state.Failure{})
		return
	}
	h.viewState.Set(state.Success{Page: page})
}

// UpdateSelectedNews records item as the current selection. The selection
// is visible on return; the read history write runs in the background.
func (h *Home) UpdateSelectedNews(item news.Item) {
	h.mu.Lock()
	selected := item
	h.selected = &selected
	h.mu.Unlock()

	if h.reading == nil {
		return
	}
	h.writes.Add(1)
	go func() {
		defer h.writes.Done()
		if err := h.reading.RecordOpened(item); err != nil {
			h.log.WithError(err).WithField("article", item.Key()).Warn("could not record opened article")
		}
	}()
}

// Wait blocks until pending read history writes finish.
func (h *Home) Wait() {
	h.writes.Wait()
}

// SelectedNews returns the current selection.
func (h *Home) SelectedNews() (news.Item, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.selected == nil {
		return news.Item{}, false
	}
	return *h.selected, true
}

// OpenedKeys returns keys of previously opened articles. Errors are logged
// and yield an empty set. It reads storage and is meant to run off the UI
// loop.
func (h *Home) OpenedKeys() map[string]bool {
	if h.reading == nil {
		return map[string]bool{}
	}
	keys, err := h.reading.OpenedKeys()
	if err != nil {
		h.log.WithError(err).Warn("could not load read history")
	}
	if keys == nil {
		keys = map[string]bool{}
	}
	return keys
}
