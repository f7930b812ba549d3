package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/lixenwraith/waterfall/render"
	"github.com/lixenwraith/waterfall/vmath"
)

var (
	duration  = flag.Duration("duration", 5*time.Second, "Benchmark duration")
	particles = flag.Int("particles", 400, "Particles kept alive in the column")
	rocks     = flag.Int("rocks", 6, "Rocks placed in the column")
	width     = flag.Int("width", 120, "Screen width in cells")
	height    = flag.Int("height", 40, "Screen height in cells")
	draw      = flag.Bool("render", true, "Render each frame to a simulation screen")
)

func main() {
	flag.Parse()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		panic(err)
	}
	defer screen.Fini()
	screen.SetSize(*width, *height)

	canvas := physics.Canvas{
		Width:  float64(*width * constants.DefaultCellWidth),
		Height: float64((*height - constants.HUDHeight) * constants.DefaultCellHeight),
	}
	cfg := physics.DefaultConfig()
	rng := vmath.NewFastRand(42)
	renderer := render.NewTerminalRenderer(screen, constants.DefaultCellWidth, constants.DefaultCellHeight, 42)

	bounds := physics.WaterfallBounds(canvas.Width, cfg.WaterfallWidth)
	obstacles := make([]components.Obstacle, 0, *rocks)
	for i := 0; i < *rocks; i++ {
		obstacles = append(obstacles, components.Obstacle{
			X:      bounds.Left + rng.Float64()*bounds.Width,
			Y:      canvas.Height * (0.2 + 0.6*rng.Float64()),
			Radius: constants.ObstacleMinRadius + rng.Float64()*constants.ObstacleRadiusRange,
		})
	}

	var ps []components.Particle
	var frames int64
	var stepTotal, drawTotal time.Duration
	var stats physics.StepStats
	glyphs := []rune("水の流れは絶えずしてwaterfall")
	start := time.Now()

	for time.Since(start) < *duration {
		// Top up to the target population
		for len(ps) < *particles {
			ps = append(ps, components.Particle{
				Char:    string(glyphs[rng.Intn(len(glyphs))]),
				X:       bounds.Left + rng.Float64()*bounds.Width,
				Y:       constants.SpawnY + rng.Float64()*canvas.Height,
				VY:      cfg.MinVelocity + rng.Float64()*constants.SpawnVYJitter,
				Opacity: 1,
			})
		}

		t0 := time.Now()
		var st physics.StepStats
		ps, st = physics.Step(ps, obstacles, cfg, canvas, float64(constants.FrameUpdateInterval.Milliseconds()), rng)
		stepTotal += time.Since(t0)
		stats.Collisions += st.Collisions
		stats.Overflows += st.Overflows
		stats.Removed += st.Removed

		if *draw {
			t1 := time.Now()
			renderer.DrawBackground(canvas)
			renderer.DrawObstacles(obstacles, true)
			renderer.DrawTrails(ps)
			renderer.DrawParticles(ps)
			renderer.Present()
			drawTotal += time.Since(t1)
		}
		frames++
	}

	elapsed := time.Since(start)
	if frames == 0 {
		fmt.Println("No frames completed")
		return
	}

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Resolution:   %dx%d (%d cells)\n", *width, *height, *width**height)
	fmt.Printf("  Particles:    %d, rocks: %d\n", *particles, *rocks)
	fmt.Printf("  Total Frames: %d\n", frames)
	fmt.Printf("  Total Time:   %v\n", elapsed)
	fmt.Printf("  Avg FPS:      %.2f\n", float64(frames)/elapsed.Seconds())
	fmt.Printf("  Avg Step:     %v\n", stepTotal/time.Duration(frames))
	if *draw {
		fmt.Printf("  Avg Render:   %v\n", drawTotal/time.Duration(frames))
	}
	fmt.Printf("  Collisions:   %d, overflows: %d, removed: %d\n", stats.Collisions, stats.Overflows, stats.Removed)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}
