package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cell is one composed terminal cell; glyph alpha decides which writer wins
type cell struct {
	bg    tcell.Color
	glyph string
	fg    tcell.Color
	alpha float64
	cont  bool // right half of a wide glyph
}

// frameBuffer composes one frame before it is flushed to the screen
type frameBuffer struct {
	width, height int
	cells         []cell
}

func (b *frameBuffer) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.width, b.height = w, h
	if cap(b.cells) < w*h {
		b.cells = make([]cell, w*h)
	}
	b.cells = b.cells[:w*h]
}

func (b *frameBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *frameBuffer) at(x, y int) *cell {
	return &b.cells[y*b.width+x]
}

// setBackground replaces the background and clears any glyph
func (b *frameBuffer) setBackground(x, y int, bg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	*b.at(x, y) = cell{bg: bg}
}

// tintBackground mixes c over the existing background
func (b *frameBuffer) tintBackground(x, y int, c tcell.Color, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	cl := b.at(x, y)
	cl.bg = Blend(c, cl.bg, alpha)
}

// putGlyph writes g at (x, y) unless a more opaque glyph already occupies the cell
// Wide glyphs claim the cell to their right as well
func (b *frameBuffer) putGlyph(x, y int, g string, fg tcell.Color, alpha float64) {
	if !b.inBounds(x, y) || g == "" || alpha <= 0 {
		return
	}
	w := runewidth.StringWidth(g)
	if w == 2 && x+1 >= b.width {
		return
	}

	cl := b.at(x, y)
	if cl.cont || (cl.glyph != "" && cl.alpha >= alpha) {
		return
	}
	if w == 2 {
		right := b.at(x+1, y)
		if right.glyph != "" && right.alpha >= alpha {
			return
		}
		right.glyph, right.cont = "", true
	} else if cl.glyph != "" && runewidth.StringWidth(cl.glyph) == 2 {
		// Narrow glyph replaces a wide one; release its right half
		b.at(x+1, y).cont = false
	}
	cl.glyph, cl.fg, cl.alpha = g, fg, alpha
}

// flush writes the buffer to the screen at row offset 0
func (b *frameBuffer) flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cl := b.at(x, y)
			if cl.cont {
				continue
			}
			style := tcell.StyleDefault.Background(cl.bg)
			if cl.glyph == "" {
				screen.SetContent(x, y, ' ', nil, style)
				continue
			}
			runes := []rune(cl.glyph)
			style = style.Foreground(Blend(cl.fg, cl.bg, cl.alpha))
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
	}
}
