package feed

import (
	"context"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestAtomParsing(t *testing.T) {
	// Sample Atom feed content from https://github.com/golang/go/releases.atom
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom" xmlns:media="http://search.yahoo.com/mrss/" xml:lang="en-US">
  <id>tag:github.com,2008:https://github.com/golang/go/releases</id>
  <link type="text/html" rel="alternate" href="https://github.com/golang/go/releases"/>
  <link type="application/atom+xml" rel="self" href="https://github.com/golang/go/releases.atom"/>
  <title>Release notes from go</title>
  <updated>2026-01-15T18:32:04Z</updated>
  <entry>
    <id>tag:github.com,2008:Repository/23096959/go1.26rc2</id>
    <updated>2026-01-15T18:32:04Z</updated>
    <link rel="alternate" type="text/html" href="https://github.com/golang/go/releases/tag/go1.26rc2"/>
    <title>[release-branch.go1.26] go1.26rc2</title>
    <content type="html">&lt;p&gt;Change-Id: If5ce85a68010848f16c4c2509e18466ed1356912&lt;/p&gt;</content>
    <author>
      <name>gopherbot</name>
    </author>
    <media:thumbnail height="30" width="30" url="https://avatars.githubusercontent.com/u/8566911?s=60&amp;v=4"/>
  </entry>
</feed>`

	originalParser := ParserFunc
	defer func() { ParserFunc = originalParser }()

	ParserFunc = func(_ context.Context, _ string) (*gofeed.Feed, error) {
		fp := gofeed.NewParser()
		return fp.ParseString(atomContent)
	}

	page, err := NewSource("https://github.com/golang/go/releases.atom").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Failed to fetch atom feed: %v", err)
	}

	if len(page.Articles) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(page.Articles))
	}

	item := page.Articles[0]
	if item.Title != "[release-branch.go1.26] go1.26rc2" {
		t.Errorf("Expected item title '[release-branch.go1.26] go1.26rc2', got '%s'", item.Title)
	}
	if item.Source != "Release notes from go" {
		t.Errorf("Expected source 'Release notes from go', got '%s'", item.Source)
	}
	if item.Author != "gopherbot" {
		t.Errorf("Expected author 'gopherbot', got '%s'", item.Author)
	}
	if item.ImageURL != "https://avatars.githubusercontent.com/u/8566911?s=60&v=4" {
		t.Errorf("Expected media thumbnail url, got '%s'", item.ImageURL)
	}

	expectedDate, _ := time.Parse(time.RFC3339, "2026-01-15T18:32:04Z")
	if !item.PublishedAt.Equal(expectedDate) {
		t.Errorf("Expected date %v, got %v", expectedDate, item.PublishedAt)
	}
}
