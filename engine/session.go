package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/gascii/catalog"
	"github.com/lixenwraith/gascii/navigation"
	"github.com/lixenwraith/gascii/render"
	"github.com/lixenwraith/gascii/terminal"
)

// SessionOption configures a Session
type SessionOption func(*Session)

// WithFeedback forwards edge bumps to f
func WithFeedback(f navigation.Feedback) SessionOption {
	return func(s *Session) {
		s.feedback = f
	}
}

// Session runs the read-key / redraw loop on one surface
type Session struct {
	surface      terminal.Surface
	layout       render.Layout
	orchestrator *render.Orchestrator
	controller   *navigation.Controller
	feedback     navigation.Feedback

	frames int
}

// NewSession wires the controller and renderers for the layout
func NewSession(surface terminal.Surface, layout render.Layout, opts ...SessionOption) *Session {
	s := &Session{
		surface: surface,
		layout:  layout,
	}
	for _, opt := range opts {
		opt(s)
	}

	var navOpts []navigation.Option
	if s.feedback != nil {
		navOpts = append(navOpts, navigation.WithFeedback(s.feedback))
	}
	s.controller = navigation.New(surface, layout.Bounds(), navOpts...)

	s.orchestrator = render.NewOrchestrator(surface)
	s.orchestrator.Register(render.BorderRenderer{}, render.PriorityBackground)
	s.orchestrator.Register(render.NewGridRenderer(layout), render.PriorityGrid)
	s.orchestrator.Register(render.NewPanelRenderer(layout), render.PriorityPanel)

	return s
}

// Run draws the first frame, then one full frame per key until quit
// Returns nil on quit; layout and input failures are returned as is
func (s *Session) Run() error {
	if err := s.layout.Validate(); err != nil {
		return err
	}

	// The controller reads glyphs back from the surface, so the grid goes first
	render.DrawGrid(s.surface, s.layout.GridX, s.layout.GridY, s.layout.Rows)
	r := s.controller.Start()

	for {
		code, err := catalog.Lookup(r)
		if err != nil {
			x, y := s.controller.Position()
			return fmt.Errorf("cell (%d, %d): %w", x, y, err)
		}

		s.orchestrator.RenderFrame(render.Context{Code: code})
		s.frames++

		ev, err := s.surface.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		next, ok := s.controller.Step(ev)
		if !ok {
			log.Printf("session: quit after %d frames", s.frames)
			return nil
		}

		x, y := s.controller.Position()
		log.Printf("session: key=%s cursor=(%d,%d) char=%q", ev, x, y, next)
		r = next
	}
}

// Frames returns the number of frames presented
func (s *Session) Frames() int {
	return s.frames
}

// Controller exposes the cursor state machine
func (s *Session) Controller() *navigation.Controller {
	return s.controller
}
