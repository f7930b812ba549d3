package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/vmath"
)

func TestCollides(t *testing.T) {
	rock := components.Obstacle{X: 100, Y: 100, Radius: 30}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centre", 100, 100, true},
		{"inside contact radius", 100, 100 - 37.9, true},
		{"exactly on contact radius", 100, 100 - 38, false},
		{"far away", 300, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collides(tt.x, tt.y, rock); got != tt.want {
				t.Errorf("Collides(%f, %f) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestReflectDeadOnIdentity(t *testing.T) {
	v := vmath.Vec2{X: 0, Y: 0.5}
	n := vmath.Vec2{X: 0, Y: -1}

	r := Reflect(v, n)
	if vmath.V2Dot(r, n) != -vmath.V2Dot(v, n) {
		t.Errorf("Expected v'·n == -(v·n), got %f vs %f", vmath.V2Dot(r, n), -vmath.V2Dot(v, n))
	}
	if r != (vmath.Vec2{X: 0, Y: -0.5}) {
		t.Errorf("Expected dead-on reversal, got %v", r)
	}
}

func TestReflectPreservesNorm(t *testing.T) {
	rng := vmath.NewFastRand(11)
	for i := 0; i < 1000; i++ {
		angle := rng.Float64() * 2 * math.Pi
		n := vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		v := vmath.Vec2{X: rng.Float64() - 0.5, Y: rng.Float64()}

		r := Reflect(v, n)
		if math.Abs(vmath.V2Mag(r)-vmath.V2Mag(v)) > 1e-12 {
			t.Fatalf("Norm changed: |v|=%f |v'|=%f", vmath.V2Mag(v), vmath.V2Mag(r))
		}
		if math.Abs(vmath.V2Dot(r, n)+vmath.V2Dot(v, n)) > 1e-12 {
			t.Fatalf("Normal component not mirrored for n=%v v=%v", n, v)
		}
	}
}

func TestDeflectCoincidentCentres(t *testing.T) {
	cfg := DefaultConfig()
	rock := components.Obstacle{X: 50, Y: 50, Radius: 30}
	p := components.Particle{X: 50, Y: 50, VX: 0.1, VY: 0.2}
	before := p

	if Deflect(&p, rock, &cfg) {
		t.Error("Expected no deflection for coincident centres")
	}
	if p.X != before.X || p.Y != before.Y || p.VX != before.VX || p.VY != before.VY {
		t.Errorf("Expected unchanged particle, got %+v", p)
	}
}

func TestDeflectSideHit(t *testing.T) {
	cfg := DefaultConfig()
	rock := components.Obstacle{X: 100, Y: 100, Radius: 30}
	p := components.Particle{X: 70, Y: 100, VX: 0.4, VY: 0.3}

	if !Deflect(&p, rock, &cfg) {
		t.Fatal("Expected deflection")
	}

	dist := math.Hypot(p.X-rock.X, p.Y-rock.Y)
	if math.Abs(dist-(rock.Radius+constants.PushMargin)) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", rock.Radius+constants.PushMargin, dist)
	}
	if p.VX >= 0 {
		t.Errorf("Expected vx reversed away from rock, got %f", p.VX)
	}
	if math.Abs(p.VX-(-0.4*cfg.DeflectionDamping)) > 1e-12 {
		t.Errorf("Expected damped vx %f, got %f", -0.4*cfg.DeflectionDamping, p.VX)
	}
	if p.VY < cfg.MinVelocity {
		t.Errorf("Expected vy >= %f, got %f", cfg.MinVelocity, p.VY)
	}
}

func TestUpdateTrail(t *testing.T) {
	var trail []components.TrailPoint
	for i := 0; i < 12; i++ {
		trail = UpdateTrail(trail, float64(i), float64(i), 1, 8)
	}

	if len(trail) != 8 {
		t.Fatalf("Expected 8 samples, got %d", len(trail))
	}
	if trail[0].X != 11 || trail[0].Opacity != 1 {
		t.Errorf("Expected newest sample first with full opacity, got %+v", trail[0])
	}
	for i := 1; i < len(trail); i++ {
		if trail[i].Opacity >= trail[i-1].Opacity {
			t.Errorf("Sample %d opacity %f not below sample %d opacity %f", i, trail[i].Opacity, i-1, trail[i-1].Opacity)
		}
	}

	if got := UpdateTrail(trail, 0, 0, 1, 0); got != nil {
		t.Errorf("Expected nil trail for zero length, got %d samples", len(got))
	}
}

func TestWaterfallBounds(t *testing.T) {
	b := WaterfallBounds(1000, 300)
	if b.Left != 350 || b.Right != 650 || b.Width != 300 {
		t.Errorf("Unexpected bounds %+v", b)
	}

	// Narrow canvas still yields a centred column
	b = WaterfallBounds(200, 300)
	if b.Left != -50 || b.Right != 250 {
		t.Errorf("Unexpected narrow bounds %+v", b)
	}
}

func TestWithSpeed(t *testing.T) {
	base := DefaultConfig()
	fast := base.WithSpeed(5)

	if fast.Gravity != 0.002 || fast.SpawnInterval != 2 || fast.MinVelocity != 0.4 {
		t.Errorf("Unexpected preset values %+v", fast)
	}
	if fast.TrailLength != base.TrailLength || fast.WaterfallWidth != base.WaterfallWidth {
		t.Error("Speed preset must not touch unrelated parameters")
	}
	if base.Gravity != 0.001 {
		t.Error("WithSpeed mutated its receiver")
	}

	if Preset(42).Level != DefaultSpeedLevel {
		t.Errorf("Expected fallback to default level, got %d", Preset(42).Level)
	}
}
