// Package layout provides pure functions for UI dimension calculations.
package layout

// NarrowThreshold is the terminal width below which panes stack one per row.
const NarrowThreshold = 60

const (
	// MaxColumns is the widest pane grid.
	MaxColumns = 3

	// MinBoxWidth is the smallest content width of a pane box.
	MinBoxWidth = 12

	// PaneContentHeight is the number of lines inside a pane box: title, tooltip, status.
	PaneContentHeight = 4

	// BorderSize is the cells a border adds to a box, both sides together.
	BorderSize = 2
)

// Fixed rows around the pane grid.
const (
	HeaderHeight    = 1
	StatusBarHeight = 1
	FooterHeight    = 1
)

// History panel bounds, in entries.
const (
	MinHistoryRows     = 3
	MaxHistoryRows     = 12
	DefaultHistoryRows = 8
)

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// Columns returns how many panes fit side by side.
func Columns(width, panes int) int {
	if panes <= 0 {
		return 0
	}
	if IsNarrowMode(width) {
		return 1
	}
	return min(panes, MaxColumns)
}

// BoxWidth returns the content width of one pane box when cols boxes share width.
func BoxWidth(width, cols int) int {
	if cols <= 0 {
		return max(width-BorderSize, MinBoxWidth)
	}
	return max(width/cols-BorderSize, MinBoxWidth)
}

// GridHeight returns the rows taken by panes laid out in cols columns.
func GridHeight(panes, cols int) int {
	if panes <= 0 || cols <= 0 {
		return 0
	}
	rows := (panes + cols - 1) / cols
	return rows * (PaneContentHeight + BorderSize)
}

// HistoryRows returns how many history entries fit below the grid.
// A zero window height (size not known yet) gives DefaultHistoryRows.
func HistoryRows(windowHeight, gridHeight int) int {
	if windowHeight <= 0 {
		return DefaultHistoryRows
	}
	// title line plus the panel border
	chrome := HeaderHeight + StatusBarHeight + FooterHeight + BorderSize + 1
	rows := windowHeight - gridHeight - chrome
	return min(max(rows, MinHistoryRows), MaxHistoryRows)
}
