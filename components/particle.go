package components

// TrailPoint is one historical sample of a particle, newest first in Particle.Trail
type TrailPoint struct {
	X, Y    float64
	Opacity float64
}

// Particle is one falling character
// Units: pixels and pixels/ms on the virtual canvas, Age in ms
type Particle struct {
	ID      string
	Char    string // Single grapheme cluster
	X, Y    float64
	VX, VY  float64
	Opacity float64 // [0, 1]
	Trail   []TrailPoint
	Age     float64

	// Overflowing marks a particle that escaped column confinement after crowding
	Overflowing bool
}

// Alive reports whether the particle survives removal for a canvas of the given height
func (p *Particle) Alive(canvasHeight, removalMargin, opacityEpsilon float64) bool {
	return p.Opacity > opacityEpsilon && p.Y < canvasHeight+removalMargin
}
