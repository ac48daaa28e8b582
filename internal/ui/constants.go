// Package ui provides shared UI constants and utilities.
package ui

// Page layout constants.
const (
	// MaxContentWidth caps the width of the centered page column.
	MaxContentWidth = 96

	// PageMargin is the minimum horizontal space on each side of the column.
	PageMargin = 2

	// HeroHeight is the line count of the title block at the top of the page.
	HeroHeight = 9

	// CardChromeWidth is the horizontal space a card's border and padding take.
	CardChromeWidth = 4

	// PosterHeight is the height of the video poster area.
	PosterHeight = 5

	// WheelStep is the number of rows a mouse wheel notch scrolls.
	WheelStep = 3

	// MinFeatureColumnWidth is the narrowest a features grid column can be.
	MinFeatureColumnWidth = 28
)

// ContentWidth returns the width of the page column for a terminal width.
func ContentWidth(width int) int {
	return max(min(width-2*PageMargin, MaxContentWidth), 1)
}

// FeatureColumns returns how many feature cards fit side by side.
func FeatureColumns(contentWidth int) int {
	return max(min(contentWidth/MinFeatureColumnWidth, 3), 1)
}
