package constant

// Character range
const (
	// FirstPrintable is the space character
	FirstPrintable = 32

	// LastPrintable is the tilde character
	LastPrintable = 126

	// PrintableCount is the number of printable ASCII characters
	PrintableCount = LastPrintable - FirstPrintable + 1
)

// Grid Layout
const (
	// GridColumns is the number of characters per grid row
	GridColumns = 16

	// GridSpacing is the cell step between adjacent glyphs on both axes
	// Cursor movement uses the same step so it always lands on a glyph
	GridSpacing = 2

	// GridOriginY is the row of the first grid line
	GridOriginY = 2

	// GridMinOriginX keeps the grid border inside the outer border
	GridMinOriginX = 4

	// GridOriginDivisor and GridOriginShift give origin x = cols/6 - 6
	GridOriginDivisor = 6
	GridOriginShift   = 6
)

// Info Panel Layout (row offsets from panel origin)
const (
	PanelTitleRow       = 1
	PanelDescriptionRow = 3
	PanelCharHeaderRow  = 5
	PanelCharRow        = 6
	PanelBaseHeaderRow  = 8
	PanelBaseRow        = 9
	PanelExitRow        = 11

	// PanelTitleMargin is subtracted from the panel x-origin to get the title centering width
	PanelTitleMargin = 7

	// PanelNameColumn is the offset of the Unicode name from the glyph
	PanelNameColumn = 7
)

// Info Panel base columns (offsets from panel origin)
const (
	PanelBinColumn = 0
	PanelOctColumn = 10
	PanelDecColumn = 16
	PanelHexColumn = 22
)
