package physics

import (
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/vmath"
)

// Collides reports whether a particle centred at (x, y) overlaps the obstacle
func Collides(x, y float64, o components.Obstacle) bool {
	d := vmath.V2Mag(vmath.Vec2{X: x - o.X, Y: y - o.Y})
	return d < o.Radius+constants.ParticleRadius
}

// Reflect mirrors velocity v about the unit normal n without damping
func Reflect(v, n vmath.Vec2) vmath.Vec2 {
	return vmath.V2Reflect(v, n)
}

// Deflect bounces p off obstacle o
// The particle is pushed out to Radius+PushMargin along the centre-to-particle normal,
// its reflected velocity is damped and vy floored at MinVelocity
// Coincident centres leave p unchanged and return false
func Deflect(p *components.Particle, o components.Obstacle, cfg *Config) bool {
	n, dist := vmath.V2Normalize(vmath.Vec2{X: p.X - o.X, Y: p.Y - o.Y})
	if dist == 0 {
		return false
	}

	v := Reflect(vmath.Vec2{X: p.VX, Y: p.VY}, n)

	push := o.Radius + constants.PushMargin - dist
	p.X += n.X * push
	p.Y += n.Y * push

	p.VX = v.X * cfg.DeflectionDamping
	p.VY = v.Y * cfg.DeflectionDamping
	if p.VY < cfg.MinVelocity {
		p.VY = cfg.MinVelocity
	}
	return true
}
