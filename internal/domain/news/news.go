// Package news defines the article models shown by the reader.
package news

import "time"

// Item represents a single fetched article. Empty strings mean the
// upstream value was absent.
type Item struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
	Source      string
	Author      string
	Content     string
	PublishedAt time.Time
}

// Key identifies an item for read tracking. It falls back to the title
// when the upstream payload carries no link.
func (i Item) Key() string {
	if i.URL != "" {
		return i.URL
	}
	return i.Title
}

// Page is one fetched result set.
type Page struct {
	TotalResults *int
	Articles     []Item
}

// NewPage builds a page with a known total.
func NewPage(total int, articles []Item) Page {
	return Page{TotalResults: &total, Articles: articles}
}

// HasResults reports whether the page should be rendered as a list.
// A nil or zero total means "no results" regardless of Articles.
func (p Page) HasResults() bool {
	return p.TotalResults != nil && *p.TotalResults != 0
}

// Total returns the reported total, or 0 when unknown.
func (p Page) Total() int {
	if p.TotalResults == nil {
		return 0
	}
	return *p.TotalResults
}
