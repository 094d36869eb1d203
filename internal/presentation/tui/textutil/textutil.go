// Package textutil provides small formatting helpers for TUI text.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate trims a string to the given width with an ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, Ellipsis)
}

// Clamp wraps text to width and keeps at most maxLines lines. When lines
// are dropped the last kept line ends with an ellipsis.
func Clamp(text string, width, maxLines int) []string {
	text = SingleLine(text)
	if text == "" || width <= 0 || maxLines <= 0 {
		return nil
	}

	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	lines := make([]string, 0, len(wrapped))
	for _, line := range wrapped {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= maxLines {
		return lines
	}

	lines = lines[:maxLines]
	last := lines[maxLines-1] + Ellipsis
	lines[maxLines-1] = Truncate(last, width)
	return lines
}

// PadLines returns exactly n lines, appending blanks or dropping extras.
func PadLines(lines []string, n int) []string {
	out := make([]string, n)
	copy(out, lines)
	return out
}
