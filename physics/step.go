package physics

import (
	"math"

	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/vmath"
)

// StepStats counts notable events of one update step
type StepStats struct {
	Collisions int
	Overflows  int // particles that entered overflow this step
	Removed    int
}

// Step advances every particle by dt milliseconds and returns the surviving list
// The input slice and its trails are left untouched; obstacles are read only
func Step(
	particles []components.Particle,
	obstacles []components.Obstacle,
	cfg Config,
	canvas Canvas,
	dt float64,
	rng vmath.Rand,
) ([]components.Particle, StepStats) {
	var stats StepStats
	if len(particles) == 0 {
		return nil, stats
	}

	bounds := WaterfallBounds(canvas.Width, cfg.WaterfallWidth)
	next := make([]components.Particle, 0, len(particles))

	for i := range particles {
		p := particles[i]

		// Integrate
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += cfg.Gravity * dt
		p.Age += dt

		if !p.Overflowing {
			p.VX += (rng.Float64() - 0.5) * cfg.Turbulence * dt
		}

		// Trail records where the particle was before this step
		prev := &particles[i]
		p.Trail = UpdateTrail(prev.Trail, prev.X, prev.Y, prev.Opacity, cfg.TrailLength)

		// First hit wins, no re-test after deflection
		for _, o := range obstacles {
			if !Collides(p.X, p.Y, o) {
				continue
			}
			if Deflect(&p, o, &cfg) {
				p.Trail = nil
				stats.Collisions++
			}
			break
		}

		if overflowed := applyOverflow(&p, i, particles, &cfg, rng); overflowed {
			stats.Overflows++
		} else if !p.Overflowing {
			confine(&p, bounds)
		}

		applyFade(&p, canvas.Height, dt)

		if !p.Alive(canvas.Height, constants.RemovalMargin, constants.OpacityEpsilon) {
			stats.Removed++
			continue
		}
		next = append(next, p)
	}

	return next, stats
}

// CountNearby counts particles of the pre-step list inside the crowd window around (x, y)
// that are nearly stationary, excluding index self
func CountNearby(particles []components.Particle, self int, x, y float64) int {
	count := 0
	for j := range particles {
		if j == self {
			continue
		}
		c := &particles[j]
		if math.Abs(c.X-x) < constants.CrowdWindow &&
			math.Abs(c.Y-y) < constants.CrowdWindow &&
			c.VY < constants.CrowdStillVelocity {
			count++
		}
	}
	return count
}

// applyOverflow spills a slow particle sideways when its neighbourhood is crowded
func applyOverflow(p *components.Particle, self int, snapshot []components.Particle, cfg *Config, rng vmath.Rand) bool {
	if p.VY >= constants.OverflowTriggerVelocity {
		return false
	}
	if CountNearby(snapshot, self, p.X, p.Y) <= cfg.MaxNearbyChars {
		return false
	}

	p.Overflowing = true
	p.VY = cfg.OverflowVelocity + rng.Float64()*constants.OverflowJitter
	p.VX *= constants.OverflowSpread
	return true
}

// confine clamps x into the column and bounces vx inward
func confine(p *components.Particle, b Bounds) {
	switch {
	case p.X < b.Left:
		p.X = b.Left
		p.VX = math.Abs(p.VX) * constants.WallBounce
	case p.X > b.Right:
		p.X = b.Right
		p.VX = -math.Abs(p.VX) * constants.WallBounce
	}
}

// applyFade accumulates bottom-band and age fades
func applyFade(p *components.Particle, canvasHeight, dt float64) {
	if p.Y > canvasHeight-constants.BottomFadeMargin {
		p.Opacity = math.Max(0, p.Opacity-constants.BottomFadeRate*dt)
	}
	if p.Age > constants.AgeFadeThreshold {
		p.Opacity = math.Max(0, p.Opacity-constants.AgeFadeRate*dt)
	}
	if p.Opacity > 1 {
		p.Opacity = 1
	}
}
