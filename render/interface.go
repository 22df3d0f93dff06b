package render

import (
	"github.com/lixenwraith/gascii/catalog"
	"github.com/lixenwraith/gascii/terminal"
)

// Context carries per-frame state shared by all renderers
type Context struct {
	// Code is the character under the cursor
	Code catalog.Code
}

// Renderer draws one region of the frame
type Renderer interface {
	Render(ctx Context, s terminal.Surface)
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(ctx Context, s terminal.Surface)

// Render calls f(ctx, s)
func (f RendererFunc) Render(ctx Context, s terminal.Surface) {
	f(ctx, s)
}
