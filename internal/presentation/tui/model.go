package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/infrastructure/imageloader"
	"github.com/tesso57/headlines/internal/observable"
	"github.com/tesso57/headlines/internal/presentation/navigation"
	"github.com/tesso57/headlines/internal/presentation/tui/detail"
	"github.com/tesso57/headlines/internal/presentation/tui/home"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
	"github.com/tesso57/headlines/internal/presentation/tui/update"
	"github.com/tesso57/headlines/internal/presentation/tui/view"
)

// HomeViewModel is the home view-model as seen by the app host.
type HomeViewModel interface {
	home.ViewModel
	SelectedNews() (news.Item, bool)
}

// Deps groups external dependencies for the model.
type Deps struct {
	ViewModel   HomeViewModel
	Navigator   *navigation.Navigator
	Images      imageloader.Loader
	Logger      logrus.FieldLogger
	OpenBrowser func(string) error
}

// ScreenChangedMsg is emitted when the navigator switches screens.
type ScreenChangedMsg struct {
	Screen navigation.Screen
	sub    *observable.Subscription[navigation.Screen]
}

// Model represents the main application state. It hosts the home screen
// for the whole session and a detail screen while one is open.
type Model struct {
	settings settings.Settings
	deps     Deps
	log      logrus.FieldLogger

	home   *home.Screen
	detail *detail.Screen
	navSub *observable.Subscription[navigation.Screen]
	state  *state.ModelState
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, deps Deps) *Model {
	if deps.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		deps.Logger = l
	}
	if deps.OpenBrowser == nil {
		deps.OpenBrowser = openBrowser
	}
	keys := state.NewKeyMap(cfg.KeyMap)
	return &Model{
		settings: cfg,
		deps:     deps,
		log:      deps.Logger.WithField("component", "tui"),
		home: home.New(deps.ViewModel, deps.Navigator, home.Options{
			Keys:   keys,
			Theme:  cfg.Theme,
			Images: deps.Images,
			Logger: deps.Logger,
		}),
		state: &state.ModelState{
			Session: state.HomeView,
			Help:    help.New(),
			Keys:    keys,
		},
	}
}

// Init subscribes to navigation and mounts the home screen.
func (m *Model) Init() tea.Cmd {
	m.navSub = m.deps.Navigator.Subscribe()
	return tea.Batch(waitForScreen(m.navSub), m.home.Mount())
}

func waitForScreen(sub *observable.Subscription[navigation.Screen]) tea.Cmd {
	return func() tea.Msg {
		screen, ok := <-sub.C()
		if !ok {
			return nil
		}
		return ScreenChangedMsg{Screen: screen, sub: sub}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(update.HandleWindowSize(m.state, msg))
	case tea.KeyMsg:
		if cmd, handled := update.HandleKeyMsg(m.state, msg); handled {
			if m.state.Quitting {
				m.teardown()
			}
			return m, cmd
		}
		return m, m.updateActive(msg)
	case tea.MouseMsg:
		if m.state.Help.ShowAll || m.state.Session == state.QuitView {
			return m, nil
		}
		return m, m.updateActive(msg)
	case ScreenChangedMsg:
		if msg.sub == nil || msg.sub != m.navSub {
			return m, nil
		}
		return m, tea.Batch(waitForScreen(m.navSub), m.switchScreen(msg.Screen))
	case detail.BrowserOpenedMsg:
		m.setStatus(browserStatus(msg))
		return m, m.resize(update.ComputeLayout(m.state))
	}

	// Async results belong to the home screen even while detail is shown.
	cmds := []tea.Cmd{m.home.Update(msg)}
	if m.detail != nil {
		cmds = append(cmds, m.detail.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	if m.state.Quitting {
		return ""
	}
	return view.Render(m.buildProps())
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	switch m.state.Session {
	case state.DetailView:
		if m.detail != nil {
			return m.detail.Update(msg)
		}
	case state.HomeView:
		return m.home.Update(msg)
	}
	return nil
}

// switchScreen swaps the visible screen. The home screen stays mounted, so
// returning to it never fetches again.
func (m *Model) switchScreen(screen navigation.Screen) tea.Cmd {
	switch screen {
	case navigation.NewsDetail:
		item, ok := m.deps.ViewModel.SelectedNews()
		if !ok {
			m.log.Warn("detail requested without a selection")
			return nil
		}
		m.detail = detail.New(item, m.deps.Navigator, detail.Options{
			Keys:        m.state.Keys,
			Style:       m.settings.Theme.Glamour,
			OpenBrowser: m.deps.OpenBrowser,
		})
		m.enter(state.DetailView)
		m.setStatus("")
	case navigation.Home:
		m.detail = nil
		m.enter(state.HomeView)
		m.setStatus("")
	}
	return m.resize(update.ComputeLayout(m.state))
}

func (m *Model) enter(session state.Session) {
	if m.state.Session == state.QuitView {
		m.state.Previous = session
		return
	}
	m.state.Session = session
}

func (m *Model) resize(layout update.Layout) tea.Cmd {
	if m.detail != nil {
		m.detail.SetSize(layout.BodyWidth, layout.BodyHeight)
	}
	return m.home.SetSize(layout.BodyWidth, layout.BodyHeight, layout.BodyTop)
}

func (m *Model) setStatus(status string) {
	m.state.StatusMessage = status
}

func (m *Model) teardown() {
	m.home.Unmount()
	m.navSub.Unsubscribe()
}

func browserStatus(msg detail.BrowserOpenedMsg) string {
	if msg.Err != nil {
		return fmt.Sprintf("Could not open browser: %v", msg.Err)
	}
	return "Opened in browser"
}
