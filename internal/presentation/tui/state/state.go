// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/headlines/internal/application/settings"
)

// Session represents the current top-level view.
type Session int

const (
	HomeView Session = iota
	DetailView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	UpPage   key.Binding
	DownPage key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Open     key.Binding
	Back     key.Binding
	Browser  key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Top, k.Bottom},
		{k.Open, k.Back, k.Browser},
		{k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       binding(cfg.Up, "up"),
		Down:     binding(cfg.Down, "down"),
		UpPage:   binding(cfg.UpPage, "page up"),
		DownPage: binding(cfg.DownPage, "page down"),
		Top:      binding(cfg.Top, "top"),
		Bottom:   binding(cfg.Bottom, "bottom"),
		Open:     binding(cfg.Open, "open"),
		Back:     binding(cfg.Back, "back"),
		Browser:  binding(cfg.Browser, "browser"),
		Quit:     binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	names := splitKeys(keys)
	label := strings.Join(names, "/")
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(label, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
