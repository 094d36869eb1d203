package state

import "github.com/charmbracelet/bubbles/help"

// ModelState holds the app-level presentation state. Screen-local state
// lives in the screens themselves.
type ModelState struct {
	Session       Session
	Previous      Session
	Help          help.Model
	Keys          KeyMap
	Width         int
	Height        int
	StatusMessage string
	Quitting      bool
}
