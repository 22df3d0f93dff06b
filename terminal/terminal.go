package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned when stdin is not attached to a terminal
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed is returned by ReadKey once the screen has been finalized
	ErrClosed = errors.New("terminal closed")
)

// Surface is a character-cell display with single-key input
// Coordinates are (row, col), 0-indexed from the top-left corner
type Surface interface {
	// Clear blanks every cell of the back buffer
	Clear()

	// PutString writes text starting at (row, col); cells outside the screen are dropped
	PutString(row, col int, text string, emphasis bool)

	// DrawRect draws a single-line box with corners at (top, left) and (bottom, right)
	DrawRect(top, left, bottom, right int)

	// DrawBorder draws a box around the whole screen
	DrawBorder()

	// CharAt returns the glyph currently held at (row, col), space for empty cells
	CharAt(row, col int) rune

	// MoveCursor places the visible cursor
	MoveCursor(row, col int)

	// ReadKey blocks until the next key press
	ReadKey() (Event, error)

	// Show presents the back buffer
	Show()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Fini restores terminal state. Safe to call multiple times
	Fini()
}

// screenSurface implements Surface on a tcell.Screen
type screenSurface struct {
	screen tcell.Screen
	base   tcell.Style
	bold   tcell.Style

	finiOnce sync.Once
}

// New acquires the controlling terminal, enters raw mode and the alternate screen
func New() (Surface, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return NewFromScreen(screen), nil
}

// NewFromScreen wraps an initialized tcell screen
func NewFromScreen(screen tcell.Screen) Surface {
	base := tcell.StyleDefault
	screen.SetStyle(base)
	return &screenSurface{
		screen: screen,
		base:   base,
		bold:   base.Bold(true),
	}
}

func (s *screenSurface) Clear() {
	s.screen.Clear()
}

func (s *screenSurface) PutString(row, col int, text string, emphasis bool) {
	style := s.base
	if emphasis {
		style = s.bold
	}

	x := col
	for _, r := range text {
		s.screen.SetContent(x, row, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func (s *screenSurface) DrawRect(top, left, bottom, right int) {
	for x := left + 1; x < right; x++ {
		s.screen.SetContent(x, top, tcell.RuneHLine, nil, s.base)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, s.base)
	}
	for y := top + 1; y < bottom; y++ {
		s.screen.SetContent(left, y, tcell.RuneVLine, nil, s.base)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, s.base)
	}

	s.screen.SetContent(left, top, tcell.RuneULCorner, nil, s.base)
	s.screen.SetContent(right, top, tcell.RuneURCorner, nil, s.base)
	s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, s.base)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, s.base)
}

func (s *screenSurface) DrawBorder() {
	w, h := s.screen.Size()
	s.DrawRect(0, 0, h-1, w-1)
}

func (s *screenSurface) CharAt(row, col int) rune {
	primary, _, _, _ := s.screen.GetContent(col, row)
	if primary == 0 {
		return ' '
	}
	return primary
}

func (s *screenSurface) MoveCursor(row, col int) {
	s.screen.ShowCursor(col, row)
}

func (s *screenSurface) ReadKey() (Event, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return Event{}, ErrClosed
		case *tcell.EventKey:
			return translateKey(ev), nil
		case *tcell.EventResize:
			// Layout is fixed at startup; only repaint what is already there
			s.screen.Sync()
		}
	}
}

func (s *screenSurface) Show() {
	s.screen.Show()
}

func (s *screenSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *screenSurface) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}
