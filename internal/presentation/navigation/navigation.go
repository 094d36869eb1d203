// Package navigation switches between the reader's screens.
package navigation

import "github.com/tesso57/headlines/internal/observable"

// Screen identifies a navigable screen.
type Screen int

const (
	Home Screen = iota
	NewsDetail
)

func (s Screen) String() string {
	switch s {
	case Home:
		return "home"
	case NewsDetail:
		return "news-detail"
	default:
		return "unknown"
	}
}

// Navigator holds the active screen. The app host subscribes to it and
// swaps screens when it changes.
type Navigator struct {
	screen *observable.Value[Screen]
}

// NewNavigator creates a Navigator starting at start.
func NewNavigator(start Screen) *Navigator {
	return &Navigator{screen: observable.NewValue(start)}
}

// UpdateScreenState requests a transition to screen.
func (n *Navigator) UpdateScreenState(screen Screen) {
	n.screen.Set(screen)
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.screen.Get()
}

// Subscribe registers for screen changes. The current screen is delivered first.
func (n *Navigator) Subscribe() *observable.Subscription[Screen] {
	return n.screen.Subscribe()
}
