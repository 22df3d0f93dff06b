package terminal

import "github.com/gdamore/tcell/v2"

// tcellKeys maps tcell special keys onto Key
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyHome:  KeyHome,
	tcell.KeyEnd:   KeyEnd,
	tcell.KeyPgUp:  KeyPageUp,
	tcell.KeyPgDn:  KeyPageDown,

	tcell.KeyInsert:     KeyInsert,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyCtrlC:      KeyCtrlC,
}

// translateKey converts a tcell key event into an Event
func translateKey(ev *tcell.EventKey) Event {
	out := Event{Mod: translateMod(ev.Modifiers())}

	if ev.Key() == tcell.KeyRune {
		// Some tcell versions report control chords as a rune with ModCtrl
		if out.Mod&ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			out.Key = KeyCtrlC
			return out
		}
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out
	}

	if k, ok := tcellKeys[ev.Key()]; ok {
		out.Key = k
	}
	return out
}

func translateMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
