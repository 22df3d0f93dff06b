package navigation

import (
	"github.com/lixenwraith/gascii/constant"
	"github.com/lixenwraith/gascii/terminal"
)

// CellReader is the part of the surface the controller observes
type CellReader interface {
	CharAt(row, col int) rune
	MoveCursor(row, col int)
}

// Feedback receives a notification when a relative move hits the grid edge
type Feedback interface {
	Bump()
}

// Bounds is the cursor region: origin (X, Y) to (X+XMax, Y+YMax) inclusive
type Bounds struct {
	X, Y       int
	XMax, YMax int
}

// State is the controller lifecycle state
type State uint8

const (
	StateActive State = iota
	StateExited
)

// Option configures a Controller
type Option func(*Controller)

// WithFeedback sets the edge-bump listener
func WithFeedback(f Feedback) Option {
	return func(c *Controller) {
		c.feedback = f
	}
}

// Controller owns the cursor position and maps keys to clamped moves
type Controller struct {
	cells    CellReader
	bounds   Bounds
	feedback Feedback

	x, y  int
	state State
}

// New creates a controller with the cursor at the bounds origin
func New(cells CellReader, bounds Bounds, opts ...Option) *Controller {
	c := &Controller{
		cells:  cells,
		bounds: bounds,
		x:      bounds.X,
		y:      bounds.Y,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start reports the character under the initial position, before any key is read
func (c *Controller) Start() rune {
	c.clamp()
	return c.observe()
}

// Step applies one key and returns the character under the cursor
// Returns false once the quit key has been received
func (c *Controller) Step(ev terminal.Event) (rune, bool) {
	if c.state == StateExited {
		return 0, false
	}
	if IsQuit(ev) {
		c.state = StateExited
		return 0, false
	}

	relative := true
	switch ev.Key {
	case terminal.KeyUp:
		c.y -= constant.GridSpacing
	case terminal.KeyDown:
		c.y += constant.GridSpacing
	case terminal.KeyLeft:
		c.x -= constant.GridSpacing
	case terminal.KeyRight:
		c.x += constant.GridSpacing
	case terminal.KeyPageUp:
		c.y, relative = c.bounds.Y, false
	case terminal.KeyPageDown:
		c.y, relative = c.bounds.Y+c.bounds.YMax, false
	case terminal.KeyHome:
		c.x, relative = c.bounds.X, false
	case terminal.KeyEnd:
		c.x, relative = c.bounds.X+c.bounds.XMax, false
	default:
		relative = false
	}

	if c.clamp() && relative && c.feedback != nil {
		c.feedback.Bump()
	}
	return c.observe(), true
}

// Position returns the cursor cell as (x, y)
func (c *Controller) Position() (x, y int) {
	return c.x, c.y
}

// State returns the lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Exited reports whether the quit key has been received
func (c *Controller) Exited() bool {
	return c.state == StateExited
}

// IsQuit reports whether ev ends the session
func IsQuit(ev terminal.Event) bool {
	switch ev.Key {
	case terminal.KeyCtrlC:
		return true
	case terminal.KeyRune:
		return ev.Rune == constant.QuitRune
	}
	return false
}

// clamp enforces origin <= cursor <= origin+max per axis, x first
// Returns true if either axis was adjusted
func (c *Controller) clamp() bool {
	x := min(max(c.x, c.bounds.X), c.bounds.X+c.bounds.XMax)
	y := min(max(c.y, c.bounds.Y), c.bounds.Y+c.bounds.YMax)
	moved := x != c.x || y != c.y
	c.x, c.y = x, y
	return moved
}

func (c *Controller) observe() rune {
	r := c.cells.CharAt(c.y, c.x)
	c.cells.MoveCursor(c.y, c.x)
	return r
}
