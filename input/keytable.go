package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'?': IntentToggleHelp,
			'm': IntentToggleMute,
			'r': IntentToggleRocks,
			'c': IntentClearRocks,
			's': IntentCycleSource,
			'u': IntentFetchCustom,
			'x': IntentResetCustom,
			'1': IntentSpeed,
			'2': IntentSpeed,
			'3': IntentSpeed,
			'4': IntentSpeed,
			'5': IntentSpeed,
		},
	}
}
