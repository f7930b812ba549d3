package engine

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/physics"
)

// Context holds the terminal, clock and the pixel/cell mapping of the virtual canvas
type Context struct {
	Screen       tcell.Screen
	TimeProvider TimeProvider

	// Virtual pixels per terminal cell
	CellWidth, CellHeight int
}

// NewContext creates a context over an initialized screen
func NewContext(screen tcell.Screen, cellWidth, cellHeight int) *Context {
	if cellWidth <= 0 {
		cellWidth = constants.DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = constants.DefaultCellHeight
	}
	return &Context{
		Screen:       screen,
		TimeProvider: NewMonotonicTimeProvider(),
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
	}
}

// GridSize returns the drawable area in cells, excluding the HUD rows
func (c *Context) GridSize() (int, int) {
	w, h := c.Screen.Size()
	h -= constants.HUDHeight
	if h < 0 {
		h = 0
	}
	return w, h
}

// Canvas returns the current canvas size in pixels, read from the screen on every call
func (c *Context) Canvas() physics.Canvas {
	w, h := c.GridSize()
	return physics.Canvas{
		Width:  float64(w * c.CellWidth),
		Height: float64(h * c.CellHeight),
	}
}

// CellToCanvas maps a cell to the pixel at its centre
func (c *Context) CellToCanvas(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * float64(c.CellWidth), (float64(cy) + 0.5) * float64(c.CellHeight)
}

// CanvasToCell maps a pixel to the cell containing it
func (c *Context) CanvasToCell(x, y float64) (int, int) {
	return int(math.Floor(x / float64(c.CellWidth))), int(math.Floor(y / float64(c.CellHeight)))
}
