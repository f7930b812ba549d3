package input

import (
	"github.com/gdamore/tcell/v2"
)

// CellMapper converts terminal cells to canvas coordinates
type CellMapper interface {
	CellToCanvas(cx, cy int) (float64, float64)
	GridSize() (int, int)
}

// Actions receives the effects of translated intents
type Actions interface {
	Quit()
	Resize()
	ToggleHelp()
	ToggleMute()
	PlaceRock(x, y float64)
	ToggleRocks()
	ClearRocks()
	SetSpeed(level int)
	CycleSource()
	FetchCustom()
	ResetCustom()
}

// Handler translates tcell events into intents and applies them
// It runs on the frame loop goroutine and is not safe for concurrent use
type Handler struct {
	keys    *KeyTable
	mapper  CellMapper
	actions Actions

	// Previous mouse button state for press edge detection
	buttons tcell.ButtonMask
}

// NewHandler creates a handler using the default key table
func NewHandler(mapper CellMapper, actions Actions) *Handler {
	return &Handler{
		keys:    DefaultKeyTable(),
		mapper:  mapper,
		actions: actions,
	}
}

// Translate maps an event to an intent without side effects other than mouse edge tracking
func (h *Handler) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.translateKey(ev)
	case *tcell.EventMouse:
		return h.translateMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (h *Handler) translateKey(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		return Intent{Type: h.keys.SpecialKeys[ev.Key()]}
	}
	r := ev.Rune()
	it := h.keys.Runes[r]
	if it == IntentSpeed {
		return Intent{Type: IntentSpeed, Level: int(r - '0')}
	}
	return Intent{Type: it}
}

// translateMouse fires on the button-1 press edge only; drags and releases are ignored
func (h *Handler) translateMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed {
		return Intent{}
	}

	cx, cy := ev.Position()
	w, gh := h.mapper.GridSize()
	if cx < 0 || cy < 0 || cx >= w || cy >= gh {
		// HUD row or outside the canvas
		return Intent{}
	}
	x, y := h.mapper.CellToCanvas(cx, cy)
	return Intent{Type: IntentPlaceRock, X: x, Y: y}
}

// Handle applies ev and reports whether the loop should keep running
func (h *Handler) Handle(ev tcell.Event) bool {
	it := h.Translate(ev)
	switch it.Type {
	case IntentQuit:
		h.actions.Quit()
		return false
	case IntentResize:
		h.actions.Resize()
	case IntentToggleHelp:
		h.actions.ToggleHelp()
	case IntentToggleMute:
		h.actions.ToggleMute()
	case IntentPlaceRock:
		h.actions.PlaceRock(it.X, it.Y)
	case IntentToggleRocks:
		h.actions.ToggleRocks()
	case IntentClearRocks:
		h.actions.ClearRocks()
	case IntentSpeed:
		h.actions.SetSpeed(it.Level)
	case IntentCycleSource:
		h.actions.CycleSource()
	case IntentFetchCustom:
		h.actions.FetchCustom()
	case IntentResetCustom:
		h.actions.ResetCustom()
	}
	return true
}
