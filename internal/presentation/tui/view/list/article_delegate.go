// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/headlines/internal/infrastructure/imageloader"
	"github.com/tesso57/headlines/internal/presentation/tui/metrics"
	"github.com/tesso57/headlines/internal/presentation/tui/textutil"
)

// ArticleItem interface for items that can be rendered by ArticleDelegate.
type ArticleItem interface {
	list.Item
	Title() string
	Description() string
	ImageURL() string
	IsRead() bool
}

// ThumbnailFunc returns the rendered thumbnail for an image URL, or false
// when none is available yet.
type ThumbnailFunc func(url string) (string, bool)

// RowStyles are the styles for one article row.
type RowStyles struct {
	Normal      lipgloss.Style
	Selected    lipgloss.Style
	Title       lipgloss.Style
	Description lipgloss.Style
	Read        lipgloss.Style
	Placeholder lipgloss.Color
}

// NewRowStyles creates row styles from theme colors. row is the background
// of the selected row.
func NewRowStyles(accent, muted, row string) RowStyles {
	return RowStyles{
		Normal: lipgloss.NewStyle().
			PaddingLeft(1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(accent)).
			Background(lipgloss.Color(row)),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Read:        lipgloss.NewStyle().Faint(true),
		Placeholder: lipgloss.Color(muted),
	}
}

// ArticleDelegate renders one article per row: thumbnail, a title of at
// most two lines and a description of at most two lines.
type ArticleDelegate struct {
	Styles    RowStyles
	Thumbnail ThumbnailFunc
}

// NewArticleDelegate creates a new ArticleDelegate.
func NewArticleDelegate(styles RowStyles, thumbnail ThumbnailFunc) *ArticleDelegate {
	return &ArticleDelegate{
		Styles:    styles,
		Thumbnail: thumbnail,
	}
}

// Height returns the height of the item.
func (d *ArticleDelegate) Height() int {
	return metrics.RowHeight
}

// Spacing returns the spacing between items.
func (d *ArticleDelegate) Spacing() int {
	return metrics.RowSpacing
}

// Update handles messages for the delegate.
func (d *ArticleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ArticleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ArticleItem)
	if !ok {
		return
	}

	style := rowStyle(d.Styles, m, index)
	width := textWidth(m, style)

	title := textutil.PadLines(textutil.Clamp(i.Title(), width, metrics.RowTitleLines), metrics.RowTitleLines)
	desc := textutil.PadLines(textutil.Clamp(i.Description(), width, metrics.RowDescLines), metrics.RowDescLines)

	titleStyle := d.Styles.Title
	if i.IsRead() {
		titleStyle = titleStyle.Inherit(d.Styles.Read)
	}

	text := make([]string, 0, metrics.RowHeight)
	for _, line := range title {
		text = append(text, titleStyle.Render(line))
	}
	for _, line := range desc {
		text = append(text, d.Styles.Description.Render(line))
	}

	thumb := strings.Split(d.thumbnail(i.ImageURL()), "\n")
	gap := strings.Repeat(" ", metrics.ThumbnailGap)
	lines := make([]string, metrics.RowHeight)
	for n := range lines {
		var cell, body string
		if n < len(thumb) {
			cell = thumb[n]
		}
		if n < len(text) {
			body = text[n]
		}
		lines[n] = cell + gap + body
	}

	renderRow(w, style, lines)
}

func (d *ArticleDelegate) thumbnail(url string) string {
	if url != "" && d.Thumbnail != nil {
		if thumb, ok := d.Thumbnail(url); ok && thumb != "" {
			return thumb
		}
	}
	return imageloader.Placeholder(metrics.ThumbnailWidth, metrics.ThumbnailHeight, d.Styles.Placeholder)
}
