package terminal

// Key represents a parsed input key
type Key uint16

// Key constants
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Interrupt, delivered as a key while the terminal is raw
	KeyCtrlC
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// Event is a single key press
type Event struct {
	Key  Key
	Rune rune // Valid when Key == KeyRune
	Mod  Modifier
}

// RuneEvent builds a printable key event
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// KeyEvent builds a non-printable key event
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// String returns a stable description for logs
func (e Event) String() string {
	if e.Key == KeyRune {
		return "rune(" + string(e.Rune) + ")"
	}
	if name := KeyName(e.Key); name != "" {
		return name
	}
	return "none"
}
