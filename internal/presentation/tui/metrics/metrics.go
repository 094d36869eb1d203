// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines     = 2
	MainPaddingLeft = 1

	RowHeight       = 4
	RowSpacing      = 1
	RowTitleLines   = 2
	RowDescLines    = 2
	ThumbnailWidth  = 8
	ThumbnailHeight = RowHeight
	ThumbnailGap    = 2

	ItemRightPadding  = 1
	ItemSafetyPadding = 1

	SummaryLines = 2
)
