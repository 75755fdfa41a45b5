package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType

	// Ctrl+rune bindings, for terminals reporting control chords as modified runes
	CtrlRunes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyLeft:   IntentSteerLeft,
			tcell.KeyRight:  IntentSteerRight,
			tcell.KeyEnter:  IntentStart,
			tcell.KeyEscape: IntentMenu,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]IntentType{
			'a': IntentSteerLeft,
			'A': IntentSteerLeft,
			'd': IntentSteerRight,
			'D': IntentSteerRight,
			' ': IntentStart,
			'q': IntentQuit,
			'm': IntentToggleMute,
		},
		CtrlRunes: map[rune]IntentType{
			'c': IntentQuit,
		},
	}
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return kt.CtrlRunes[ev.Rune()]
		}
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// Merge applies sparse overrides on top of kt. IntentNone unbinds a key.
func (kt *KeyTable) Merge(overrides *KeyTable) {
	for k, it := range overrides.SpecialKeys {
		if it == IntentNone {
			delete(kt.SpecialKeys, k)
			continue
		}
		kt.SpecialKeys[k] = it
	}
	for r, it := range overrides.Runes {
		if it == IntentNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = it
	}
}
