package render

import (
	"github.com/lixenwraith/gascii/catalog"
	"github.com/lixenwraith/gascii/constant"
	"github.com/lixenwraith/gascii/terminal"
)

// DrawGrid writes each character followed by a blank cell at
// (y + 2*row, x + 2*col) and boxes the grid with a one-cell margin
func DrawGrid(s terminal.Surface, x, y int, rows [][]catalog.Code) {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	s.DrawRect(gridRect(x, y, len(rows), cols))

	for r, row := range rows {
		for c, code := range row {
			s.PutString(y+constant.GridSpacing*r, x+constant.GridSpacing*c, code.Glyph()+" ", false)
		}
	}
}

// GridRenderer draws the character grid at a fixed origin
type GridRenderer struct {
	layout Layout
}

// NewGridRenderer creates a grid renderer for the layout
func NewGridRenderer(l Layout) *GridRenderer {
	return &GridRenderer{layout: l}
}

// Render implements Renderer
func (r *GridRenderer) Render(_ Context, s terminal.Surface) {
	// Rows are re-partitioned per frame; the grid is a view, not state
	rows := catalog.Partition(catalog.All(), r.layout.Columns())
	DrawGrid(s, r.layout.GridX, r.layout.GridY, rows)
}

// BorderRenderer draws the outer screen border
type BorderRenderer struct{}

// Render implements Renderer
func (BorderRenderer) Render(_ Context, s terminal.Surface) {
	s.DrawBorder()
}
