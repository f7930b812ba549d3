package systems

import (
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/lixenwraith/waterfall/vmath"
)

// FlowSystem advances the particle set one step with its own random source
type FlowSystem struct {
	rng vmath.Rand
}

// NewFlowSystem creates a flow system; rng drives turbulence and overflow jitter
func NewFlowSystem(rng vmath.Rand) *FlowSystem {
	return &FlowSystem{rng: rng}
}

// Update runs one physics step
func (s *FlowSystem) Update(
	particles []components.Particle,
	obstacles []components.Obstacle,
	cfg physics.Config,
	canvas physics.Canvas,
	dt float64,
) ([]components.Particle, physics.StepStats) {
	return physics.Step(particles, obstacles, cfg, canvas, dt, s.rng)
}
