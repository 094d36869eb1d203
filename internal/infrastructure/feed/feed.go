// Package feed provides an RSS/Atom headline source.
package feed

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tesso57/headlines/internal/domain/news"
)

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, url string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "Headlines/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(url, ctx)
}

// Source implements usecase.HeadlineSource over a single feed URL.
type Source struct {
	URL string
}

// NewSource creates a Source for url.
func NewSource(url string) Source {
	return Source{URL: url}
}

// Fetch parses the feed and maps every entry to a news item. The total
// is the number of entries, since feeds carry no separate count.
func (s Source) Fetch(ctx context.Context) (news.Page, error) {
	url := strings.TrimSpace(s.URL)
	if url == "" {
		return news.Page{}, errors.New("feed url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	parsed, err := ParserFunc(ctx, url)
	if err != nil {
		return news.Page{}, err
	}

	items := make([]news.Item, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		items = append(items, toItem(parsed, item))
	}
	return news.NewPage(len(items), items), nil
}

func toItem(parsed *gofeed.Feed, item *gofeed.Item) news.Item {
	var date time.Time
	if item.PublishedParsed != nil {
		date = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		date = *item.UpdatedParsed
	}

	return news.Item{
		Title:       strings.TrimSpace(item.Title),
		Description: strings.TrimSpace(item.Description),
		ImageURL:    imageURL(item),
		URL:         item.Link,
		Source:      parsed.Title,
		Author:      authorName(item),
		Content:     item.Content,
		PublishedAt: date,
	}
}

func authorName(item *gofeed.Item) string {
	if item.Author != nil && item.Author.Name != "" {
		return item.Author.Name
	}
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			return a.Name
		}
	}
	return ""
}

func imageURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}
	if media, ok := item.Extensions["media"]; ok {
		for _, name := range []string{"thumbnail", "content"} {
			for _, ext := range media[name] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	return ""
}
