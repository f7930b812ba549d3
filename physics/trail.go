package physics

import (
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
)

// UpdateTrail prepends a sample, truncates to length and decays each sample by TrailDecay^rank
// Returns a new slice; the input is not modified
func UpdateTrail(trail []components.TrailPoint, x, y, opacity float64, length int) []components.TrailPoint {
	if length <= 0 {
		return nil
	}

	n := len(trail) + 1
	if n > length {
		n = length
	}

	out := make([]components.TrailPoint, n)
	out[0] = components.TrailPoint{X: x, Y: y, Opacity: opacity}
	copy(out[1:], trail[:n-1])

	factor := 1.0
	for i := range out {
		out[i].Opacity *= factor
		factor *= constants.TrailDecay
	}
	return out
}
