package render

import (
	"github.com/lixenwraith/gascii/terminal"
)

type rendererEntry struct {
	renderer Renderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	surface   terminal.Surface
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator drawing on the given surface
func NewOrchestrator(surface terminal.Surface) *Orchestrator {
	return &Orchestrator{
		surface:   surface,
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame executes the render pipeline: clear, render all, show
// Every frame is drawn from scratch
func (o *Orchestrator) RenderFrame(ctx Context) {
	o.surface.Clear()

	for _, entry := range o.renderers {
		entry.renderer.Render(ctx, o.surface)
	}

	o.surface.Show()
}
