package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/engine"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/mattn/go-runewidth"
)

// HelpLines is the in-screen how-to, also printed by -howto
var HelpLines = []string{
	"click        place a rock",
	"r            show / hide rocks",
	"c            clear all rocks",
	"1-5          flow speed",
	"s            next text source",
	"u            fetch the custom URL",
	"x            reset custom text",
	"m            mute / unmute sound",
	"?            toggle this help",
	"q, Esc       quit",
}

// meterEighths are partial block glyphs for the speed meter tip
var meterEighths = []rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉'}

// hudState animates the speed meter between frames
type hudState struct {
	status    engine.Status
	hasStatus bool

	spring   harmonica.Spring
	meterPos float64
	meterVel float64
	spin     int
}

func newHUDState() *hudState {
	return &hudState{
		spring: harmonica.NewSpring(harmonica.FPS(int(1000/constants.FrameUpdateInterval.Milliseconds())), 6.0, 0.7),
	}
}

// meterTarget is the number of filled meter cells for a speed level
func meterTarget(level int) float64 {
	return float64(level) / float64(physics.MaxSpeedLevel) * constants.SpeedMeterWidth
}

func (h *hudState) update(st engine.Status) {
	if !h.hasStatus {
		// Start settled on the first frame
		h.meterPos = meterTarget(st.SpeedLevel)
	}
	h.status = st
	h.hasStatus = true
	h.meterPos, h.meterVel = h.spring.Update(h.meterPos, h.meterVel, meterTarget(st.SpeedLevel))
	h.spin++
}

// flush draws the status line on the last row and the help overlay if enabled
func (h *hudState) flush(screen tcell.Screen) {
	if !h.hasStatus {
		return
	}
	w, sh := screen.Size()
	if w <= 0 || sh <= 0 {
		return
	}
	y := sh - constants.HUDHeight

	base := tcell.StyleDefault.Background(RgbHUDBackground).Foreground(RgbHUDText)
	accent := base.Foreground(RgbHUDAccent)
	dim := base.Foreground(RgbHUDDim)

	for x := 0; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}

	st := h.status
	x := 1
	x = drawText(screen, x, y, w, st.Source, accent)
	x = drawText(screen, x, y, w, " │ ", dim)
	x = h.drawMeter(screen, x, y, w, base)
	x = drawText(screen, x, y, w, " "+physics.Preset(st.SpeedLevel).Name, base)
	x = drawText(screen, x, y, w, " │ ", dim)
	x = drawText(screen, x, y, w, fmt.Sprintf("chars %d", st.Particles), base)
	x = drawText(screen, x, y, w, " │ ", dim)

	rocks := fmt.Sprintf("rocks %d", st.Rocks)
	if !st.RocksVisible {
		rocks += " (hidden)"
	}
	x = drawText(screen, x, y, w, rocks, base)

	if st.Loading {
		frame := string([]rune(constants.LoadingSpinner)[(h.spin/8)%len([]rune(constants.LoadingSpinner))])
		x = drawText(screen, x, y, w, " │ ", dim)
		x = drawText(screen, x, y, w, frame+" loading", accent)
	}
	if st.Message != "" {
		x = drawText(screen, x, y, w, " │ ", dim)
		x = drawText(screen, x, y, w, st.Message, base)
	}

	hint := "? help"
	if hx := w - runewidth.StringWidth(hint) - 1; hx > x {
		drawText(screen, hx, y, w, hint, dim)
	}

	if st.ShowHelp {
		drawHelp(screen, w, y)
	}
}

// drawMeter draws the spring-animated speed bar
func (h *hudState) drawMeter(screen tcell.Screen, x, y, maxX int, base tcell.Style) int {
	pos := math.Max(0, math.Min(h.meterPos, constants.SpeedMeterWidth))
	for i := 0; i < constants.SpeedMeterWidth && x < maxX; i++ {
		fill := pos - float64(i)
		color := GetSpeedMeterColor(float64(i+1) / constants.SpeedMeterWidth)
		style := base.Foreground(color)
		switch {
		case fill >= 1:
			screen.SetContent(x, y, '█', nil, style)
		case fill > 0:
			screen.SetContent(x, y, meterEighths[int(fill*8)], nil, style)
		default:
			screen.SetContent(x, y, '·', nil, base.Foreground(RgbHUDDim))
		}
		x++
	}
	return x
}

// drawText writes s from x, clipped at maxX, and returns the next column
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

// drawHelp draws a centred bordered box with the key list above the HUD row
func drawHelp(screen tcell.Screen, w, hudY int) {
	title := " waterfall "
	inner := runewidth.StringWidth(title)
	for _, l := range HelpLines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	boxW := inner + 4
	boxH := len(HelpLines) + 2
	if boxW > w || boxH > hudY {
		return
	}

	x0 := (w - boxW) / 2
	y0 := (hudY - boxH) / 2
	border := tcell.StyleDefault.Background(RgbHUDBackground).Foreground(RgbHelpBorder)
	text := tcell.StyleDefault.Background(RgbHUDBackground).Foreground(RgbHUDText)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = tcell.RuneULCorner
			case y == y0 && x == x0+boxW-1:
				ch = tcell.RuneURCorner
			case y == y0+boxH-1 && x == x0:
				ch = tcell.RuneLLCorner
			case y == y0+boxH-1 && x == x0+boxW-1:
				ch = tcell.RuneLRCorner
			case y == y0 || y == y0+boxH-1:
				ch = tcell.RuneHLine
			case x == x0 || x == x0+boxW-1:
				ch = tcell.RuneVLine
			}
			screen.SetContent(x, y, ch, nil, border)
		}
	}

	drawText(screen, x0+(boxW-runewidth.StringWidth(title))/2, y0, x0+boxW-1, title, border)
	for i, l := range HelpLines {
		drawText(screen, x0+2, y0+1+i, x0+boxW-2, strings.TrimRight(l, " "), text)
	}
}
