package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimSurface(t *testing.T, w, h int) (Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	s := NewFromScreen(screen)
	t.Cleanup(s.Fini)
	return s, screen
}

func TestPutStringAndCharAt(t *testing.T) {
	s, _ := newSimSurface(t, 40, 10)

	s.PutString(3, 5, "Hex", false)

	want := []rune{'H', 'e', 'x'}
	for i, r := range want {
		if got := s.CharAt(3, 5+i); got != r {
			t.Errorf("CharAt(3, %d): expected %q, got %q", 5+i, r, got)
		}
	}
	if got := s.CharAt(3, 8); got != ' ' {
		t.Errorf("Expected blank cell after text, got %q", got)
	}
}

func TestPutStringEmphasis(t *testing.T) {
	s, screen := newSimSurface(t, 40, 10)

	s.PutString(0, 0, "T", true)
	s.PutString(1, 0, "d", false)

	_, _, bold, _ := screen.GetContent(0, 0)
	_, _, plain, _ := screen.GetContent(0, 1)

	if bold != tcell.StyleDefault.Bold(true) {
		t.Error("Expected emphasized text to be bold")
	}
	if plain != tcell.StyleDefault {
		t.Error("Expected plain text not to be bold")
	}
}

func TestClearBlanksCells(t *testing.T) {
	s, _ := newSimSurface(t, 20, 5)

	s.PutString(2, 2, "abc", false)
	s.Clear()

	if got := s.CharAt(2, 2); got != ' ' {
		t.Errorf("Expected space after clear, got %q", got)
	}
}

func TestDrawRect(t *testing.T) {
	s, _ := newSimSurface(t, 20, 10)

	s.DrawRect(1, 2, 5, 8)

	tests := []struct {
		name     string
		row, col int
		want     rune
	}{
		{"Upper left", 1, 2, tcell.RuneULCorner},
		{"Upper right", 1, 8, tcell.RuneURCorner},
		{"Lower left", 5, 2, tcell.RuneLLCorner},
		{"Lower right", 5, 8, tcell.RuneLRCorner},
		{"Top edge", 1, 5, tcell.RuneHLine},
		{"Bottom edge", 5, 3, tcell.RuneHLine},
		{"Left edge", 3, 2, tcell.RuneVLine},
		{"Right edge", 4, 8, tcell.RuneVLine},
		{"Interior", 3, 5, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.CharAt(tt.row, tt.col); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDrawBorderUsesScreenSize(t *testing.T) {
	s, _ := newSimSurface(t, 30, 12)

	s.DrawBorder()

	if got := s.CharAt(0, 0); got != tcell.RuneULCorner {
		t.Errorf("Expected upper-left corner, got %q", got)
	}
	if got := s.CharAt(11, 29); got != tcell.RuneLRCorner {
		t.Errorf("Expected lower-right corner at (11, 29), got %q", got)
	}
}

func TestMoveCursor(t *testing.T) {
	s, screen := newSimSurface(t, 30, 12)

	s.MoveCursor(4, 7)
	s.Show()

	x, y, visible := screen.GetCursor()
	if x != 7 || y != 4 || !visible {
		t.Errorf("Expected visible cursor at col 7 row 4, got col %d row %d visible=%v", x, y, visible)
	}
}

func TestFiniIdempotent(t *testing.T) {
	s, _ := newSimSurface(t, 10, 5)
	s.Fini()
	s.Fini()
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"Up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Event{Key: KeyUp}},
		{"Down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Event{Key: KeyDown}},
		{"Left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Event{Key: KeyLeft}},
		{"Right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Event{Key: KeyRight}},
		{"Page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), Event{Key: KeyPageUp}},
		{"Page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), Event{Key: KeyPageDown}},
		{"Home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), Event{Key: KeyHome}},
		{"End", tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone), Event{Key: KeyEnd}},
		{"Rune q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Event{Key: KeyRune, Rune: 'q'}},
		{"Shifted up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), Event{Key: KeyUp, Mod: ModShift}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.ev); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	if got := RuneEvent('x').String(); got != "rune(x)" {
		t.Errorf("Expected rune(x), got %q", got)
	}
	if got := KeyEvent(KeyPageDown).String(); got != "page_down" {
		t.Errorf("Expected page_down, got %q", got)
	}
	if got := (Event{}).String(); got != "none" {
		t.Errorf("Expected none, got %q", got)
	}
}

func TestKeyNameCoversNavigationKeys(t *testing.T) {
	for _, k := range []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyCtrlC} {
		if KeyName(k) == "" {
			t.Errorf("Expected a name for key %d", k)
		}
	}
	if KeyName(KeyRune) != "" || KeyName(KeyNone) != "" {
		t.Error("Expected no name for KeyRune and KeyNone")
	}
}
