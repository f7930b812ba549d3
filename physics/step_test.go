package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/vmath"
)

var testCanvas = Canvas{Width: 1000, Height: 1000}

// neutralRand yields 0.5, cancelling turbulence and spawn symmetric jitter
func neutralRand() vmath.Rand {
	return vmath.NewFixedRand(0.5)
}

func TestStepEmptyList(t *testing.T) {
	out, stats := Step(nil, nil, DefaultConfig(), testCanvas, 16, neutralRand())
	if len(out) != 0 {
		t.Errorf("Expected empty list, got %d particles", len(out))
	}
	if stats != (StepStats{}) {
		t.Errorf("Expected zero stats, got %+v", stats)
	}

	out, _ = Step([]components.Particle{}, nil, DefaultConfig(), testCanvas, 16, neutralRand())
	if len(out) != 0 {
		t.Errorf("Expected empty list for empty input, got %d", len(out))
	}
}

func TestStepOpacityAndTrailBounds(t *testing.T) {
	cfg := DefaultConfig()
	rng := vmath.NewFastRand(7)
	obstacles := []components.Obstacle{
		{ID: "a", X: 480, Y: 300, Radius: 30},
		{ID: "b", X: 560, Y: 600, Radius: 40},
	}

	var particles []components.Particle
	for i := 0; i < 200; i++ {
		particles = append(particles, components.Particle{
			ID:      "p",
			Char:    "x",
			X:       350 + rng.Float64()*300,
			Y:       rng.Float64() * 900,
			VX:      (rng.Float64() - 0.5) * 0.1,
			VY:      rng.Float64() * 0.6,
			Opacity: 0.2 + rng.Float64()*0.8,
			Age:     rng.Float64() * 10000,
		})
	}

	for frame := 0; frame < 120; frame++ {
		particles, _ = Step(particles, obstacles, cfg, testCanvas, 16, rng)
		for _, p := range particles {
			if p.Opacity < 0 || p.Opacity > 1 {
				t.Fatalf("Frame %d: opacity %f out of [0,1]", frame, p.Opacity)
			}
			if len(p.Trail) > cfg.TrailLength {
				t.Fatalf("Frame %d: trail length %d exceeds %d", frame, len(p.Trail), cfg.TrailLength)
			}
		}
	}
}

func TestStepCollisionPushesOutAndClearsTrail(t *testing.T) {
	cfg := DefaultConfig()
	rock := components.Obstacle{ID: "r", X: 500, Y: 500, Radius: 30}
	p := components.Particle{
		ID: "p", Char: "a",
		X: 500, Y: 465,
		VY:      0.3,
		Opacity: 1,
		Trail:   []components.TrailPoint{{X: 500, Y: 460, Opacity: 1}},
	}

	out, stats := Step([]components.Particle{p}, []components.Obstacle{rock}, cfg, testCanvas, 1, neutralRand())
	if len(out) != 1 {
		t.Fatalf("Expected particle to survive, got %d", len(out))
	}
	if stats.Collisions != 1 {
		t.Errorf("Expected 1 collision, got %d", stats.Collisions)
	}

	got := out[0]
	dist := math.Hypot(got.X-rock.X, got.Y-rock.Y)
	if dist < rock.Radius+constants.PushMargin-1e-9 {
		t.Errorf("Expected distance >= %f, got %f", rock.Radius+constants.PushMargin, dist)
	}
	if len(got.Trail) != 0 {
		t.Errorf("Expected trail cleared after collision, got %d samples", len(got.Trail))
	}
	if got.VY < cfg.MinVelocity {
		t.Errorf("Expected vy floored at %f, got %f", cfg.MinVelocity, got.VY)
	}
}

func TestStepOverflowingNeverClamped(t *testing.T) {
	cfg := DefaultConfig()
	bounds := WaterfallBounds(testCanvas.Width, cfg.WaterfallWidth)

	p := components.Particle{
		ID: "o", Char: "a",
		X: bounds.Left - 120, Y: 200,
		VX: -0.2, VY: 0.5,
		Opacity:     1,
		Overflowing: true,
	}

	particles := []components.Particle{p}
	for frame := 0; frame < 30; frame++ {
		particles, _ = Step(particles, nil, cfg, testCanvas, 16, neutralRand())
		if len(particles) != 1 {
			t.Fatalf("Frame %d: particle removed unexpectedly", frame)
		}
		if particles[0].X >= bounds.Left {
			t.Fatalf("Frame %d: overflowing particle was clamped to x=%f", frame, particles[0].X)
		}
	}
}

func TestStepConfinementBounce(t *testing.T) {
	cfg := DefaultConfig()
	bounds := WaterfallBounds(testCanvas.Width, cfg.WaterfallWidth)

	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantIn float64 // sign of expected vx
	}{
		{"left wall", bounds.Left - 5, -0.2, bounds.Left, 1},
		{"right wall", bounds.Right + 5, 0.2, bounds.Right, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.Particle{ID: "w", Char: "a", X: tt.x, Y: 100, VX: tt.vx, VY: 0.5, Opacity: 1}
			out, _ := Step([]components.Particle{p}, nil, cfg, testCanvas, 1, neutralRand())
			if out[0].X != tt.wantX {
				t.Errorf("Expected x=%f, got %f", tt.wantX, out[0].X)
			}
			if math.Signbit(out[0].VX) == (tt.wantIn > 0) {
				t.Errorf("Expected vx pointing inward, got %f", out[0].VX)
			}
			if math.Abs(out[0].VX) > math.Abs(tt.vx) {
				t.Errorf("Expected damped vx, got %f", out[0].VX)
			}
		})
	}
}

func TestStepMonotonicFall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Turbulence = 0
	canvas := Canvas{Width: 1000, Height: 100000}

	particles := []components.Particle{{ID: "m", Char: "a", X: 500, Y: 0, VY: 0.1, Opacity: 1}}
	lastY, lastVY := particles[0].Y, particles[0].VY

	for frame := 0; frame < 200; frame++ {
		particles, _ = Step(particles, nil, cfg, canvas, 16, vmath.NewFastRand(3))
		if len(particles) != 1 {
			t.Fatalf("Frame %d: particle removed", frame)
		}
		p := particles[0]
		if p.Y <= lastY {
			t.Fatalf("Frame %d: y not strictly increasing (%f -> %f)", frame, lastY, p.Y)
		}
		if p.VY < lastVY {
			t.Fatalf("Frame %d: vy decreased (%f -> %f)", frame, lastVY, p.VY)
		}
		lastY, lastVY = p.Y, p.VY
	}
}

func TestStepCrowdingTriggersOverflow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNearbyChars = 8

	var particles []components.Particle
	for i := 0; i < 9; i++ {
		particles = append(particles, components.Particle{
			ID: "s", Char: "a",
			X:       480 + float64(i)*4,
			Y:       500 + float64(i%3)*5,
			VY:      0.05,
			Opacity: 1,
		})
	}
	particles = append(particles, components.Particle{
		ID: "test", Char: "b",
		X: 500, Y: 505,
		VY:      0.2,
		Opacity: 1,
	})

	out, stats := Step(particles, nil, cfg, testCanvas, 1, neutralRand())

	var test *components.Particle
	for i := range out {
		if out[i].ID == "test" {
			test = &out[i]
		}
	}
	if test == nil {
		t.Fatal("Test particle missing after step")
	}
	if !test.Overflowing {
		t.Fatal("Expected test particle to overflow")
	}
	if test.VY < cfg.OverflowVelocity {
		t.Errorf("Expected vy >= %f, got %f", cfg.OverflowVelocity, test.VY)
	}
	if stats.Overflows < 1 {
		t.Errorf("Expected overflow to be counted, got %d", stats.Overflows)
	}
}

func TestStepCrowdingBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()

	var particles []components.Particle
	for i := 0; i < 8; i++ {
		particles = append(particles, components.Particle{ID: "s", Char: "a", X: 500, Y: 500, VY: 0.0, Opacity: 1})
	}
	particles = append(particles, components.Particle{ID: "test", Char: "b", X: 500, Y: 500, VY: 0.2, Opacity: 1})

	out, _ := Step(particles, nil, cfg, testCanvas, 1, neutralRand())
	for _, p := range out {
		if p.ID == "test" && p.Overflowing {
			t.Error("Eight neighbours must not exceed a threshold of 8")
		}
	}
}

func TestStepFadeAndRemoval(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name    string
		p       components.Particle
		removed bool
	}{
		{
			name:    "bottom band fades out",
			p:       components.Particle{ID: "b", Char: "a", X: 500, Y: testCanvas.Height - 50, VY: 0.25, Opacity: 0.05},
			removed: true,
		},
		{
			name:    "old particle fades",
			p:       components.Particle{ID: "o", Char: "a", X: 500, Y: 100, VY: 0.25, Opacity: 0.02, Age: 9000},
			removed: true,
		},
		{
			name:    "below canvas removed",
			p:       components.Particle{ID: "d", Char: "a", X: 500, Y: testCanvas.Height + 150, VY: 0.25, Opacity: 1},
			removed: true,
		},
		{
			name:    "young particle survives",
			p:       components.Particle{ID: "y", Char: "a", X: 500, Y: 100, VY: 0.25, Opacity: 1},
			removed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stats := Step([]components.Particle{tt.p}, nil, cfg, testCanvas, 16, neutralRand())
			if tt.removed && len(out) != 0 {
				t.Errorf("Expected removal, got opacity %f y %f", out[0].Opacity, out[0].Y)
			}
			if tt.removed && stats.Removed != 1 {
				t.Errorf("Expected Removed=1, got %d", stats.Removed)
			}
			if !tt.removed && len(out) != 1 {
				t.Error("Expected particle to survive")
			}
		})
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	in := []components.Particle{{
		ID: "i", Char: "a", X: 500, Y: 100, VY: 0.3, Opacity: 1,
		Trail: []components.TrailPoint{{X: 500, Y: 90, Opacity: 1}},
	}}

	_, _ = Step(in, nil, DefaultConfig(), testCanvas, 16, neutralRand())

	if in[0].Y != 100 || in[0].Trail[0].Opacity != 1 || len(in[0].Trail) != 1 {
		t.Errorf("Input particle mutated: %+v", in[0])
	}
}
