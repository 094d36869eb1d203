package view

import (
	"strings"
	"testing"

	"github.com/tesso57/headlines/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/headlines/internal/presentation/tui/components/main"
	"github.com/tesso57/headlines/internal/presentation/tui/components/modal"
)

func TestRender_ComposesHeaderMainFooter(t *testing.T) {
	got := Render(Props{
		Header: header.Props{Visible: true, Source: "NewsAPI / us", Context: "Top headlines"},
		Main:   mainview.Props{Width: 60, Height: 10, Body: "BODY"},
		Footer: "FOOTER",
	})

	for _, want := range []string{"NewsAPI / us", "BODY", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Render() missing %q:\n%s", want, got)
		}
	}
	if strings.Index(got, "NewsAPI") > strings.Index(got, "BODY") {
		t.Fatalf("header should precede the body")
	}
}

func TestRender_HiddenHeaderLeavesBodyFirst(t *testing.T) {
	got := Render(Props{
		Header: header.Props{Visible: false, Source: "NewsAPI / us"},
		Main:   mainview.Props{Width: 40, Height: 4, Body: "BODY"},
		Footer: "FOOTER",
	})

	if !strings.HasPrefix(got, " BODY") {
		t.Fatalf("Render() = %q, want body on the first line", got)
	}
	if strings.Contains(got, "NewsAPI") {
		t.Fatalf("hidden header should not render")
	}
}

func TestRender_ModalReplacesLayout(t *testing.T) {
	got := Render(Props{
		Main:   mainview.Props{Width: 60, Height: 10, Body: "BODY"},
		Modal:  modal.Props{Visible: true, Kind: modal.Quit, Body: "Quit?", Width: 60, Height: 12},
		Footer: "FOOTER",
	})

	if !strings.Contains(got, "Quit?") {
		t.Fatalf("modal body missing")
	}
	if strings.Contains(got, "BODY") || strings.Contains(got, "FOOTER") {
		t.Fatalf("modal should replace the layout")
	}
}
