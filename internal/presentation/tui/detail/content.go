package detail

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/tesso57/headlines/internal/domain/news"
)

// NewsAPI cuts content at 200 chars and appends a marker like "[+1234 chars]".
var truncatedMarker = regexp.MustCompile(`\s*\[\+\d+ chars\]\s*$`)

// Markdown builds the article document shown on the detail screen.
func Markdown(item news.Item) string {
	var b strings.Builder

	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if meta := metaLine(item); meta != "" {
		fmt.Fprintf(&b, "*%s*\n\n", meta)
	}

	if desc := strings.TrimSpace(item.Description); desc != "" {
		fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(desc, "\n", " "))
	}

	body := strings.TrimSpace(truncatedMarker.ReplaceAllString(item.Content, ""))
	if body == "" {
		body = "No article body available. Open it in the browser."
	}
	b.WriteString(body)
	b.WriteString("\n\n")

	if url := strings.TrimSpace(item.URL); url != "" {
		fmt.Fprintf(&b, "---\n\n[Read the full article](%s)\n", url)
	}
	return b.String()
}

func metaLine(item news.Item) string {
	var parts []string
	if s := strings.TrimSpace(item.Source); s != "" {
		parts = append(parts, s)
	}
	if a := strings.TrimSpace(item.Author); a != "" {
		parts = append(parts, a)
	}
	if !item.PublishedAt.IsZero() {
		parts = append(parts, item.PublishedAt.Local().Format("2006-01-02 15:04"))
	}
	return strings.Join(parts, " · ")
}

// Render renders md for a terminal of the given width. When glamour fails
// the document is wrapped as plain text.
func Render(md string, width int, style string) string {
	if width < 1 {
		width = 1
	}
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		out, err := r.Render(md)
		if err == nil {
			return out
		}
	}
	return ansi.Wrap(md, width, "")
}
