package update

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/tesso57/headlines/internal/application/settings"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/state"
)

func TestFooterHeight_GrowsWithStatusMessage(t *testing.T) {
	s := newLayoutTestState()

	base := FooterHeight(s)
	s.StatusMessage = "Could not open browser"
	withStatus := FooterHeight(s)
	if withStatus != base+1 {
		t.Fatalf("footer height with status = %d, want %d", withStatus, base+1)
	}

	s.Session = state.QuitView
	if got := FooterHeight(s); got != base {
		t.Fatalf("footer height should ignore status in quit view: got %d, want %d", got, base)
	}
}

func TestComputeLayout(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 120
	s.Height = 40

	layout := ComputeLayout(s)
	if layout.BodyWidth != 120-metrics.MainPaddingLeft {
		t.Fatalf("body width = %d, want %d", layout.BodyWidth, 120-metrics.MainPaddingLeft)
	}
	wantHeight := 40 - FooterHeight(s) - metrics.HeaderLines
	if layout.BodyHeight != wantHeight {
		t.Fatalf("body height = %d, want %d", layout.BodyHeight, wantHeight)
	}
	if layout.BodyTop != metrics.HeaderLines {
		t.Fatalf("body top = %d, want %d", layout.BodyTop, metrics.HeaderLines)
	}
}

func TestComputeLayout_TinyTerminal(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 1
	s.Height = 1

	layout := ComputeLayout(s)
	if layout.BodyWidth < 1 || layout.BodyHeight < 1 {
		t.Fatalf("layout should never collapse below 1x1: %+v", layout)
	}
}

func newLayoutTestState() *state.ModelState {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", UpPage: "pgup", DownPage: "pgdn",
		Top: "g", Bottom: "G", Open: "enter", Back: "esc",
		Browser: "o", Quit: "q",
	})
	return &state.ModelState{
		Session: state.HomeView,
		Help:    help.New(),
		Keys:    keys,
		Width:   100,
		Height:  40,
	}
}
