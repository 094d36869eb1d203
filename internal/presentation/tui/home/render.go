package home

import (
	"fmt"

	"github.com/tesso57/headlines/internal/domain/news"
	"github.com/tesso57/headlines/internal/presentation/tui/presenter"
)

// renderer turns a home state into text. Every state has a branch.
type renderer struct {
	screen *Screen
	out    string
}

func (r *renderer) VisitInit() {
	r.out = ""
}

func (r *renderer) VisitLoading() {
	r.out = fmt.Sprintf("%s %s", r.screen.spinner.View(), presenter.LoadingText)
}

func (r *renderer) VisitFailure() {
	r.out = r.screen.failure.Render(presenter.FailureText)
}

func (r *renderer) VisitSuccess(page news.Page) {
	if !page.HasResults() {
		r.out = presenter.NoResultsText
		return
	}
	r.out = presenter.SummaryText(page.Total()) + "\n\n" + r.screen.list.View()
}
