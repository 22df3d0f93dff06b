package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gascii/catalog"
	"github.com/lixenwraith/gascii/constant"
	"github.com/lixenwraith/gascii/terminal"
)

// DrawInfo renders the information panel for code with its origin at (x, y)
func DrawInfo(s terminal.Surface, x, y int, code catalog.Code) {
	s.PutString(y+constant.PanelTitleRow, x, center(constant.TitleText, x-constant.PanelTitleMargin), true)
	s.PutString(y+constant.PanelDescriptionRow, x, constant.DescriptionText, false)

	s.PutString(y+constant.PanelCharHeaderRow, x, constant.CharHeaderText, false)
	s.PutString(y+constant.PanelCharRow, x, code.Glyph(), false)
	s.PutString(y+constant.PanelCharRow, x+constant.PanelNameColumn, code.Name(), false)

	s.PutString(y+constant.PanelBaseHeaderRow, x, constant.BaseHeaderText, false)
	s.PutString(y+constant.PanelBaseRow, x+constant.PanelBinColumn, code.Binary(), false)
	s.PutString(y+constant.PanelBaseRow, x+constant.PanelOctColumn, code.Octal(), false)
	s.PutString(y+constant.PanelBaseRow, x+constant.PanelDecColumn, code.Decimal(), false)
	s.PutString(y+constant.PanelBaseRow, x+constant.PanelHexColumn, code.Hex(), false)

	s.PutString(y+constant.PanelExitRow, x, constant.ExitText, false)
}

// PanelRenderer draws the info panel for the character under the cursor
type PanelRenderer struct {
	layout Layout
}

// NewPanelRenderer creates a panel renderer for the layout
func NewPanelRenderer(l Layout) *PanelRenderer {
	return &PanelRenderer{layout: l}
}

// Render implements Renderer
func (r *PanelRenderer) Render(ctx Context, s terminal.Surface) {
	DrawInfo(s, r.layout.PanelX, r.layout.PanelY, ctx.Code)
}

// center pads text with spaces to width, extra space going right
// Text at least width wide is returned unchanged
func center(text string, width int) string {
	pad := width - runewidth.StringWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}
