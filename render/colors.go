package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions for the scene
var (
	RgbSkyTop    = tcell.NewRGBColor(5, 5, 15) // Night blue at the top edge
	RgbSkyMiddle = tcell.NewRGBColor(0, 0, 0)  // Black band at 30% height
	RgbSkyBottom = tcell.NewRGBColor(0, 0, 5)  // Near-black basin
	RgbMist      = tcell.NewRGBColor(255, 255, 255)

	RgbRockFill      = tcell.NewRGBColor(20, 25, 35)
	RgbRockOutline   = tcell.NewRGBColor(100, 120, 150)
	RgbRockRim       = tcell.NewRGBColor(60, 80, 110)
	RgbRockHighlight = tcell.NewRGBColor(150, 170, 200)

	RgbGlyph         = tcell.NewRGBColor(255, 255, 255) // Glyph core
	RgbGlyphGlow     = tcell.NewRGBColor(220, 240, 255) // Cool glow of falling glyphs
	RgbOverflowGlow  = tcell.NewRGBColor(255, 200, 180) // Warm glow of spilled glyphs
	RgbTrail         = tcell.NewRGBColor(200, 230, 255)
	RgbHUDBackground = tcell.NewRGBColor(16, 18, 28)
	RgbHUDText       = tcell.NewRGBColor(180, 190, 210)
	RgbHUDAccent     = tcell.NewRGBColor(140, 190, 255)
	RgbHUDDim        = tcell.NewRGBColor(90, 100, 120)
	RgbHelpBorder    = tcell.NewRGBColor(100, 120, 150)
)

// Mist parameters
const (
	mistStrength = 0.06 // peak white mix at the basin centre
	mistScaleX   = 0.08
	mistScaleY   = 0.15
	mistDrift    = 0.01 // noise offset per frame
)

func toColorful(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Blend mixes fg over bg with alpha in [0, 1]
func Blend(fg, bg tcell.Color, alpha float64) tcell.Color {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	return fromColorful(toColorful(bg).BlendRgb(toColorful(fg), alpha))
}

// GradientAt returns the background gradient color at relative height t in [0, 1]
func GradientAt(t float64) tcell.Color {
	switch {
	case t <= 0:
		return RgbSkyTop
	case t < 0.3:
		return Blend(RgbSkyMiddle, RgbSkyTop, t/0.3)
	case t < 1:
		return Blend(RgbSkyBottom, RgbSkyMiddle, (t-0.3)/0.7)
	default:
		return RgbSkyBottom
	}
}

// GetSpeedMeterColor returns the color for a position in the speed meter gradient
// progress is 0.0 to 1.0, calm blue to torrent white
func GetSpeedMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbHUDBackground
	}
	if progress > 1.0 {
		progress = 1.0
	}

	if progress < 0.5 { // Deep blue to sky blue
		t := progress / 0.5
		r := int32(30 + (100-30)*t)
		g := int32(60 + (170-60)*t)
		b := int32(140 + (240-140)*t)
		return tcell.NewRGBColor(r, g, b)
	}
	// Sky blue to foam white
	t := (progress - 0.5) / 0.5
	r := int32(100 + (235-100)*t)
	g := int32(170 + (250-170)*t)
	b := int32(240 + (255-240)*t)
	return tcell.NewRGBColor(r, g, b)
}
