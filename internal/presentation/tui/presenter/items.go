// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/headlines/internal/domain/news"
)

// Row is a list item for one article. OnClick is the row's only action.
type Row struct {
	Item    news.Item
	Read    bool
	OnClick func()
}

// FilterValue implements list.Item.
func (r *Row) FilterValue() string { return r.Item.Title }

// Title returns the article title.
func (r *Row) Title() string { return r.Item.Title }

// Description returns the article description.
func (r *Row) Description() string { return r.Item.Description }

// ImageURL returns the article image URL, empty when absent.
func (r *Row) ImageURL() string { return r.Item.ImageURL }

// IsRead reports whether the article was opened before.
func (r *Row) IsRead() bool { return r.Read }

// Click invokes OnClick if set.
func (r *Row) Click() {
	if r.OnClick != nil {
		r.OnClick()
	}
}

// BuildRows builds one row per article, in order. onClick builds the
// callback bound to each article.
func BuildRows(articles []news.Item, opened map[string]bool, onClick func(news.Item) func()) []list.Item {
	rows := make([]list.Item, len(articles))
	for i, article := range articles {
		row := &Row{
			Item: article,
			Read: opened[article.Key()],
		}
		if onClick != nil {
			row.OnClick = onClick(article)
		}
		rows[i] = row
	}
	return rows
}

// ApplyRows replaces the list content with rows for page.
func ApplyRows(model *list.Model, page news.Page, opened map[string]bool, onClick func(news.Item) func()) {
	if !page.HasResults() {
		model.SetItems(nil)
		return
	}
	model.SetItems(BuildRows(page.Articles, opened, onClick))
	model.Select(0)
}

// SummaryText is the line shown above the list.
func SummaryText(total int) string {
	if total == 1 {
		return "1 article found"
	}
	return fmt.Sprintf("%d articles found", total)
}

// Messages for the static home states.
const (
	LoadingText   = "Loading articles..."
	FailureText   = "Failed to load articles. The API request limit may have been reached."
	NoResultsText = "Unfortunately no articles were found, please try again later."
)
