package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Rune aliases for keys that can't be written as a single character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeyNames maps lower-case names to tcell keys
var specialKeyNames = map[string]tcell.Key{
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
	"ctrl+s": tcell.KeyCtrlS,
}

// ParseBindings converts an action -> key-names map into a sparse override table.
// Key names are single characters, rune aliases or special key names.
// Returns an error on unknown action names or key names.
func ParseBindings(bindings map[string][]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	for action, keys := range bindings {
		intent, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return nil, errors.Errorf("keys: unknown action %q (want one of %s)", action, strings.Join(ActionNames(), ", "))
		}

		for _, name := range keys {
			if err := bindKey(kt, name, intent); err != nil {
				return nil, errors.Wrapf(err, "keys.%s", action)
			}
		}
	}
	return kt, nil
}

// NewKeyTable returns the default table with bindings applied on top
func NewKeyTable(bindings map[string][]string) (*KeyTable, error) {
	kt := DefaultKeyTable()
	if len(bindings) == 0 {
		return kt, nil
	}

	overrides, err := ParseBindings(bindings)
	if err != nil {
		return nil, err
	}
	kt.Merge(overrides)
	return kt, nil
}

func bindKey(kt *KeyTable, name string, intent IntentType) error {
	if r := []rune(name); len(r) == 1 {
		kt.Runes[r[0]] = intent
		return nil
	}

	lower := strings.ToLower(name)
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = intent
		return nil
	}
	if k, ok := specialKeyNames[lower]; ok {
		kt.SpecialKeys[k] = intent
		return nil
	}
	return errors.Errorf("unknown key %q", name)
}
