// Package home implements the headline list screen.
package home

import (
	"context"
	"image"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/infrastructure/imageloader"
	"github.com/tesso57/headlines/internal/observable"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	listview "github.com/tesso57/headlines/internal/presentation/tui/view/list"
)

// ViewModel is what the screen needs from the home view-model.
type ViewModel interface {
	ViewState() *observable.Value[state.HomeState]
	GetNews(ctx context.Context)
	UpdateSelectedNews(item news.Item)
	OpenedKeys() map[string]bool
}

// Navigator receives screen transitions.
type Navigator interface {
	UpdateScreenState(screen navigation.Screen)
}

// StateChangedMsg carries a home state delivered by the view-model.
type StateChangedMsg struct {
	State state.HomeState
	sub   *observable.Subscription[state.HomeState]
}

// OpenedKeysMsg carries the read history loaded at mount.
type OpenedKeysMsg struct {
	Keys map[string]bool
}

// ImageLoadedMsg is emitted when a thumbnail load finishes.
type ImageLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

// Options configures a Screen.
type Options struct {
	Keys   state.KeyMap
	Theme  settings.ThemeConfig
	Images imageloader.Loader
	Logger logrus.FieldLogger
}

// Screen renders the home state and owns the article list.
type Screen struct {
	vm     ViewModel
	nav    Navigator
	images imageloader.Loader
	log    logrus.FieldLogger
	keys   state.KeyMap

	list    list.Model
	spinner spinner.Model
	failure lipgloss.Style
	current state.HomeState
	opened  map[string]bool

	thumbs  map[string]string
	pending map[string]bool

	sub            *observable.Subscription[state.HomeState]
	fetchTriggered bool
	torn           bool
	top            int

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an unmounted home screen.
func New(vm ViewModel, nav Navigator, opts Options) *Screen {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Screen{
		vm:      vm,
		nav:     nav,
		images:  opts.Images,
		log:     log.WithField("component", "home-screen"),
		keys:    opts.Keys,
		spinner: newSpinner(opts.Theme.Accent),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		current: state.Init{},
		opened:  map[string]bool{},
		thumbs:  map[string]string{},
		pending: map[string]bool{},
		ctx:     ctx,
		cancel:  cancel,
	}
	s.list = newArticleList(opts.Keys, opts.Theme, s.thumbnail)
	return s
}

func newSpinner(color string) spinner.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return sp
}

func newArticleList(keys state.KeyMap, theme settings.ThemeConfig, thumb listview.ThumbnailFunc) list.Model {
	delegate := listview.NewArticleDelegate(listview.NewRowStyles(theme.Accent, theme.Muted, theme.Row), thumb)
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Headlines"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	l.KeyMap.CursorUp = keys.Up
	l.KeyMap.CursorDown = keys.Down
	l.KeyMap.PrevPage = keys.UpPage
	l.KeyMap.NextPage = keys.DownPage
	l.KeyMap.GoToStart = keys.Top
	l.KeyMap.GoToEnd = keys.Bottom
	return l
}

// Mount subscribes to the view-model and fires the fetch. The fetch is
// issued at most once per screen, however often Mount is called.
func (s *Screen) Mount() tea.Cmd {
	if s.torn {
		return nil
	}
	var cmds []tea.Cmd
	if s.sub == nil {
		s.sub = s.vm.ViewState().Subscribe()
		cmds = append(cmds, waitForState(s.sub))
	}
	if !s.fetchTriggered {
		s.fetchTriggered = true
		cmds = append(cmds, s.openedKeysCmd(), s.fetchCmd(), s.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Unmount stops deliveries, cancels pending work and disables row callbacks.
func (s *Screen) Unmount() {
	if s.torn {
		return
	}
	s.torn = true
	s.sub.Unsubscribe()
	s.cancel()
}

// State returns the last delivered home state.
func (s *Screen) State() state.HomeState {
	return s.current
}

// SetSize sizes the list to the space below the summary line. top is the
// screen row where the home body starts, used to map mouse clicks.
func (s *Screen) SetSize(width, height, top int) tea.Cmd {
	s.top = top
	listHeight := height - metrics.SummaryLines
	if listHeight < 1 {
		listHeight = 1
	}
	s.list.SetSize(width, listHeight)
	return s.loadVisibleImages()
}

func (s *Screen) fetchCmd() tea.Cmd {
	vm, ctx := s.vm, s.ctx
	return func() tea.Msg {
		vm.GetNews(ctx)
		return nil
	}
}

func (s *Screen) openedKeysCmd() tea.Cmd {
	vm := s.vm
	return func() tea.Msg {
		return OpenedKeysMsg{Keys: vm.OpenedKeys()}
	}
}

func waitForState(sub *observable.Subscription[state.HomeState]) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-sub.C()
		if !ok {
			return nil
		}
		return StateChangedMsg{State: st, sub: sub}
	}
}

// Update handles messages for the screen.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if s.torn {
		return nil
	}

	switch msg := msg.(type) {
	case StateChangedMsg:
		if msg.sub != s.sub {
			return nil
		}
		return tea.Batch(waitForState(s.sub), s.applyState(msg.State))
	case OpenedKeysMsg:
		for k := range msg.Keys {
			s.markRead(k)
		}
		return nil
	case ImageLoadedMsg:
		s.applyImage(msg)
		return nil
	case spinner.TickMsg:
		if !s.loading() {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseMsg:
		return s.handleMouse(msg)
	}
	return nil
}

func (s *Screen) loading() bool {
	switch s.current.(type) {
	case state.Init, state.Loading:
		return true
	default:
		return false
	}
}

func (s *Screen) applyState(st state.HomeState) tea.Cmd {
	s.current = st
	success, ok := st.(state.Success)
	if !ok {
		return nil
	}
	presenter.ApplyRows(&s.list, success.Page, s.opened, s.onClick)
	return s.loadVisibleImages()
}

// onClick binds the row action for item. Selection is recorded before the
// navigation request.
func (s *Screen) onClick(item news.Item) func() {
	return func() {
		if s.torn {
			return
		}
		s.vm.UpdateSelectedNews(item)
		s.markRead(item.Key())
		s.nav.UpdateScreenState(navigation.NewsDetail)
	}
}

func (s *Screen) markRead(articleKey string) {
	s.opened[articleKey] = true
	for _, it := range s.list.Items() {
		if row, ok := it.(*presenter.Row); ok && row.Item.Key() == articleKey {
			row.Read = true
		}
	}
}

func (s *Screen) hasRows() bool {
	success, ok := s.current.(state.Success)
	return ok && success.Page.HasResults() && len(s.list.Items()) > 0
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !s.hasRows() {
		return nil
	}
	if key.Matches(msg, s.keys.Open) {
		if row, ok := s.list.SelectedItem().(*presenter.Row); ok {
			row.Click()
		}
		return nil
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return tea.Batch(cmd, s.loadVisibleImages())
}

func (s *Screen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !s.hasRows() || msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.list.CursorUp()
		return s.loadVisibleImages()
	case tea.MouseButtonWheelDown:
		s.list.CursorDown()
		return s.loadVisibleImages()
	case tea.MouseButtonLeft:
		index, ok := s.rowAt(msg.Y)
		if !ok {
			return nil
		}
		s.list.Select(index)
		if row, ok := s.list.SelectedItem().(*presenter.Row); ok {
			row.Click()
		}
	}
	return nil
}

// rowAt maps a terminal row to a list index on the visible page.
func (s *Screen) rowAt(y int) (int, bool) {
	rel := y - s.top - metrics.SummaryLines
	if rel < 0 {
		return 0, false
	}
	stride := metrics.RowHeight + metrics.RowSpacing
	if rel%stride >= metrics.RowHeight {
		return 0, false
	}
	start, end := s.list.Paginator.GetSliceBounds(len(s.list.Items()))
	index := start + rel/stride
	if index >= end {
		return 0, false
	}
	return index, true
}

// loadVisibleImages requests thumbnails for rows on the current page only.
func (s *Screen) loadVisibleImages() tea.Cmd {
	if s.images == nil || !s.hasRows() {
		return nil
	}
	items := s.list.Items()
	start, end := s.list.Paginator.GetSliceBounds(len(items))
	var cmds []tea.Cmd
	for _, it := range items[start:end] {
		row, ok := it.(*presenter.Row)
		if !ok {
			continue
		}
		url := row.ImageURL()
		if url == "" || s.pending[url] {
			continue
		}
		if _, done := s.thumbs[url]; done {
			continue
		}
		s.pending[url] = true
		cmds = append(cmds, loadImageCmd(s.ctx, s.images, url))
	}
	return tea.Batch(cmds...)
}

func loadImageCmd(ctx context.Context, loader imageloader.Loader, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(ctx, url)
		return ImageLoadedMsg{URL: url, Image: img, Err: err}
	}
}

// applyImage stores a rendered thumbnail. Failures are kept as empty
// entries so the placeholder stays and the load is not repeated.
func (s *Screen) applyImage(msg ImageLoadedMsg) {
	delete(s.pending, msg.URL)
	if msg.Err != nil || msg.Image == nil {
		if msg.Err != nil {
			s.log.WithError(msg.Err).WithField("url", msg.URL).Debug("thumbnail unavailable")
		}
		s.thumbs[msg.URL] = ""
		return
	}
	s.thumbs[msg.URL] = imageloader.Thumbnail(msg.Image, metrics.ThumbnailWidth, metrics.ThumbnailHeight)
}

func (s *Screen) thumbnail(url string) (string, bool) {
	thumb, ok := s.thumbs[url]
	return thumb, ok && thumb != ""
}

// View renders the current state.
func (s *Screen) View() string {
	r := &renderer{screen: s}
	s.current.Accept(r)
	return r.out
}
