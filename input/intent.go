package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentResize     // Terminal resize event
	IntentToggleHelp // ?
	IntentToggleMute // m

	// Rocks
	IntentPlaceRock   // Left-click inside the canvas
	IntentToggleRocks // r
	IntentClearRocks  // c

	// Flow
	IntentSpeed // 1-5

	// Text sources
	IntentCycleSource // s
	IntentFetchCustom // u
	IntentResetCustom // x
)

// Intent is one translated input event
type Intent struct {
	Type IntentType

	// Canvas position of IntentPlaceRock
	X, Y float64

	// Speed level of IntentSpeed
	Level int
}
