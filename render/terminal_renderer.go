package render

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/engine"
	"github.com/lixenwraith/waterfall/physics"
)

// TerminalRenderer paints the virtual canvas onto a tcell screen
// Each cell covers cellWidth x cellHeight canvas pixels; the last screen rows hold the HUD
type TerminalRenderer struct {
	screen     tcell.Screen
	cellWidth  float64
	cellHeight float64

	buf   frameBuffer
	mist  *perlin.Perlin
	frame int64

	hud *hudState
}

// NewTerminalRenderer creates a renderer; seed varies the mist pattern
func NewTerminalRenderer(screen tcell.Screen, cellWidth, cellHeight int, seed int64) *TerminalRenderer {
	if cellWidth <= 0 {
		cellWidth = constants.DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = constants.DefaultCellHeight
	}
	return &TerminalRenderer{
		screen:     screen,
		cellWidth:  float64(cellWidth),
		cellHeight: float64(cellHeight),
		mist:       perlin.NewPerlin(2, 2, 3, seed),
		hud:        newHUDState(),
	}
}

// cellOf maps a canvas point to the cell containing it
func (r *TerminalRenderer) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / r.cellWidth)), int(math.Floor(y / r.cellHeight))
}

// centreOf maps a cell to the canvas point at its centre
func (r *TerminalRenderer) centreOf(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * r.cellWidth, (float64(cy) + 0.5) * r.cellHeight
}

// DrawBackground resets the frame to the gradient with drifting mist near the basin
func (r *TerminalRenderer) DrawBackground(canvas physics.Canvas) {
	w := int(canvas.Width / r.cellWidth)
	h := int(canvas.Height / r.cellHeight)
	r.buf.resize(w, h)
	if w == 0 || h == 0 {
		return
	}

	// Mist is a radial falloff around (w/2, 0.8h) modulated by noise
	mistX, mistY := canvas.Width/2, canvas.Height*0.8
	mistR := canvas.Width * 0.6
	drift := float64(r.frame) * mistDrift

	for cy := 0; cy < h; cy++ {
		base := GradientAt(float64(cy) / float64(h))
		for cx := 0; cx < w; cx++ {
			r.buf.setBackground(cx, cy, base)

			px, py := r.centreOf(cx, cy)
			d := math.Hypot(px-mistX, py-mistY)
			if d >= mistR {
				continue
			}
			falloff := 1 - d/mistR
			n := (r.mist.Noise2D(float64(cx)*mistScaleX+drift, float64(cy)*mistScaleY) + 1) / 2
			r.buf.tintBackground(cx, cy, RgbMist, mistStrength*falloff*n)
		}
	}
}

// DrawObstacles shades rocks as a dim fill, an outline ring and an inner highlight ring
func (r *TerminalRenderer) DrawObstacles(obstacles []components.Obstacle, visible bool) {
	if !visible {
		return
	}
	for _, o := range obstacles {
		x0, y0 := r.cellOf(o.X-o.Radius, o.Y-o.Radius)
		x1, y1 := r.cellOf(o.X+o.Radius, o.Y+o.Radius)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				px, py := r.centreOf(cx, cy)
				d := math.Hypot(px-o.X, py-o.Y)
				if d > o.Radius {
					continue
				}
				r.buf.tintBackground(cx, cy, RgbRockFill, 0.3)
				switch {
				case d > o.Radius-r.cellWidth:
					// Outline gradient fades from inner to outer edge
					t := (d - o.Radius*0.7) / (o.Radius * 0.3)
					r.buf.tintBackground(cx, cy, Blend(RgbRockRim, RgbRockOutline, t), 0.4-0.2*t)
				case math.Abs(d-o.Radius*0.8) < r.cellWidth/2:
					r.buf.tintBackground(cx, cy, RgbRockHighlight, 0.15)
				}
			}
		}
	}
}

// DrawTrails paints faded copies of each glyph along its trail
func (r *TerminalRenderer) DrawTrails(particles []components.Particle) {
	for i := range particles {
		p := &particles[i]
		for _, s := range p.Trail {
			if s.Opacity <= constants.OpacityEpsilon {
				continue
			}
			cx, cy := r.cellOf(s.X, s.Y)
			r.buf.putGlyph(cx, cy, p.Char, RgbTrail, s.Opacity*constants.TrailOpacityScale)
		}
	}
}

// GlowIntensity is the pulsing brightness factor of a glyph of the given age
func GlowIntensity(age float64) float64 {
	return math.Sin(age*constants.GlowPulseRate)*0.2 + 0.8
}

// DrawParticles paints glyphs with a pulsing glow; overflowing glyphs are dimmer and warm
func (r *TerminalRenderer) DrawParticles(particles []components.Particle) {
	for i := range particles {
		p := &particles[i]
		alpha := p.Opacity * GlowIntensity(p.Age)
		glow := RgbGlyphGlow
		if p.Overflowing {
			alpha *= constants.OverflowOpacityScale
			glow = RgbOverflowGlow
		}
		// Core color leans to white as the glow pulse peaks
		fg := Blend(RgbGlyph, glow, GlowIntensity(p.Age))
		cx, cy := r.cellOf(p.X, p.Y)
		r.buf.putGlyph(cx, cy, p.Char, fg, alpha)
	}
}

// DrawHUD draws the status line and, when requested, the help overlay
func (r *TerminalRenderer) DrawHUD(status engine.Status) {
	r.hud.update(status)
}

// Present flushes the composed frame and shows it
func (r *TerminalRenderer) Present() {
	r.buf.flush(r.screen)
	r.hud.flush(r.screen)
	r.screen.Show()
	r.frame++
}
