package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gascii/catalog"
	"github.com/lixenwraith/gascii/constant"
	"github.com/lixenwraith/gascii/navigation"
)

// ErrTerminalTooSmall is returned when the fixed layout does not fit the terminal
var ErrTerminalTooSmall = errors.New("terminal too small")

// panelMinWidth is the widest info panel line (the description)
var panelMinWidth = len(constant.DescriptionText)

// Layout is the screen geometry, computed once from the terminal size at startup
type Layout struct {
	Width, Height int

	GridX, GridY   int
	PanelX, PanelY int

	// Rows is the partitioned catalog drawn by the grid
	Rows [][]catalog.Code
}

// NewLayout derives grid and panel origins from the terminal dimensions
// Panel x = cols/2; grid x = cols/6 - 6, floored at GridMinOriginX
func NewLayout(width, height int) Layout {
	return Layout{
		Width:  width,
		Height: height,
		GridX:  max(width/constant.GridOriginDivisor-constant.GridOriginShift, constant.GridMinOriginX),
		GridY:  constant.GridOriginY,
		PanelX: width / 2,
		PanelY: 0,
		Rows:   catalog.Partition(catalog.All(), constant.GridColumns),
	}
}

// Columns returns the widest row length
func (l Layout) Columns() int {
	cols := 0
	for _, row := range l.Rows {
		cols = max(cols, len(row))
	}
	return cols
}

// GridRect returns the border rectangle enclosing the grid with a one-cell margin
func (l Layout) GridRect() (top, left, bottom, right int) {
	return gridRect(l.GridX, l.GridY, len(l.Rows), l.Columns())
}

// Bounds returns the cursor bounds covering every grid cell
func (l Layout) Bounds() navigation.Bounds {
	return navigation.Bounds{
		X:    l.GridX,
		Y:    l.GridY,
		XMax: constant.GridSpacing * max(l.Columns()-1, 0),
		YMax: constant.GridSpacing * max(len(l.Rows)-1, 0),
	}
}

// Validate checks that grid, panel and outer border fit without overlap
func (l Layout) Validate() error {
	_, _, bottom, right := l.GridRect()

	needW := l.PanelX + panelMinWidth + 1
	needH := max(bottom, l.PanelY+constant.PanelExitRow) + 2

	if right >= l.PanelX {
		return fmt.Errorf("%w: width %d puts the grid edge (column %d) over the panel (column %d)",
			ErrTerminalTooSmall, l.Width, right, l.PanelX)
	}
	if l.Width < needW || l.Height < needH {
		return fmt.Errorf("%w: have %dx%d, need %dx%d", ErrTerminalTooSmall, l.Width, l.Height, needW, needH)
	}
	return nil
}

func gridRect(x, y, rows, cols int) (top, left, bottom, right int) {
	return y - 1, x - constant.GridSpacing, y + constant.GridSpacing*rows - 1, x + constant.GridSpacing*cols
}
