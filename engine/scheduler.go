package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/physics"
)

// Spawner may append one particle per call; the bool reports whether it did
type Spawner interface {
	Spawn(particles []components.Particle, cfg physics.Config, canvas physics.Canvas) ([]components.Particle, bool)
}

// Updater produces the next particle list for one timestep
type Updater interface {
	Update(particles []components.Particle, obstacles []components.Obstacle, cfg physics.Config, canvas physics.Canvas, dt float64) ([]components.Particle, physics.StepStats)
}

// ObstacleSource supplies the obstacle snapshot used for one frame
type ObstacleSource interface {
	Snapshot() []components.Obstacle
	Visible() bool
}

// CanvasSource reports the canvas size at the time of the call
type CanvasSource interface {
	Canvas() physics.Canvas
}

// Status is the HUD data for one frame
type Status struct {
	Source       string
	SpeedLevel   int
	Particles    int
	Rocks        int
	RocksVisible bool
	Loading      bool
	Message      string
	ShowHelp     bool
}

// Renderer receives per-frame snapshots in draw order
type Renderer interface {
	DrawBackground(canvas physics.Canvas)
	DrawObstacles(obstacles []components.Obstacle, visible bool)
	DrawTrails(particles []components.Particle)
	DrawParticles(particles []components.Particle)
	DrawHUD(status Status)
	Present()
}

// SessionStats accumulates counters over the whole run
type SessionStats struct {
	Frames        uint64
	Spawned       int
	Collisions    int
	Overflows     int
	Removed       int
	PeakParticles int
	History       []float64 // particle count sampled every historyEvery frames
}

const (
	historyEvery = 30
	historyMax   = 240
)

// FrameScheduler drives spawn, update and render once per frame on a single goroutine
// Input events and posted tasks run on the same goroutine between frames
type FrameScheduler struct {
	canvas    CanvasSource
	clock     TimeProvider
	spawner   Spawner
	updater   Updater
	obstacles ObstacleSource
	renderer  Renderer

	interval time.Duration
	maxDelta time.Duration

	cfg        physics.Config
	particles  []components.Particle
	last       time.Time
	spawnTimer float64 // ms accumulated since the last spawn attempt

	stats    SessionStats
	stepHook func(physics.StepStats)
	status   func() Status

	tasks    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// SchedulerDeps bundles the collaborators of a FrameScheduler
type SchedulerDeps struct {
	Canvas    CanvasSource
	Clock     TimeProvider
	Spawner   Spawner
	Updater   Updater
	Obstacles ObstacleSource
	Renderer  Renderer
}

// NewFrameScheduler creates a scheduler ticking every interval
// maxDelta caps the frame delta after stalls, zero disables the cap
func NewFrameScheduler(deps SchedulerDeps, cfg physics.Config, interval, maxDelta time.Duration) *FrameScheduler {
	return &FrameScheduler{
		canvas:    deps.Canvas,
		clock:     deps.Clock,
		spawner:   deps.Spawner,
		updater:   deps.Updater,
		obstacles: deps.Obstacles,
		renderer:  deps.Renderer,
		interval:  interval,
		maxDelta:  maxDelta,
		cfg:       cfg,
		last:      deps.Clock.Now(),
		tasks:     make(chan func(), 16),
		stopChan:  make(chan struct{}),
	}
}

// SetConfig swaps the physics configuration; takes effect on the next frame
// Must be called from the scheduler goroutine (input handler or posted task)
func (s *FrameScheduler) SetConfig(cfg physics.Config) {
	s.cfg = cfg
}

// Config returns the active configuration
func (s *FrameScheduler) Config() physics.Config {
	return s.cfg
}

// SetStepHook registers a callback receiving each frame's step stats
func (s *FrameScheduler) SetStepHook(fn func(physics.StepStats)) {
	s.stepHook = fn
}

// SetStatusProvider registers the HUD status source
func (s *FrameScheduler) SetStatusProvider(fn func() Status) {
	s.status = fn
}

// Particles returns the live particle list; callers must not retain it across frames
func (s *FrameScheduler) Particles() []components.Particle {
	return s.particles
}

// Stats returns the accumulated session counters
func (s *FrameScheduler) Stats() SessionStats {
	st := s.stats
	st.History = append([]float64(nil), s.stats.History...)
	return st
}

// Frame runs one frame at time now: spawn, update, render
func (s *FrameScheduler) Frame(now time.Time) {
	d := now.Sub(s.last)
	if d < 0 {
		d = 0
	}
	if s.maxDelta > 0 && d > s.maxDelta {
		d = s.maxDelta
	}
	s.last = now
	dt := float64(d) / float64(time.Millisecond)

	cfg := s.cfg
	canvas := s.canvas.Canvas()

	// Spawn: timer resets to zero, remainder is dropped
	s.spawnTimer += dt
	if s.spawnTimer > cfg.SpawnInterval {
		var spawned bool
		s.particles, spawned = s.spawner.Spawn(s.particles, cfg, canvas)
		if spawned {
			s.stats.Spawned++
		}
		s.spawnTimer = 0
	}

	// Update against one obstacle snapshot shared with the renderer
	obstacles := s.obstacles.Snapshot()
	var step physics.StepStats
	s.particles, step = s.updater.Update(s.particles, obstacles, cfg, canvas, dt)
	s.record(step)

	// Render
	s.renderer.DrawBackground(canvas)
	s.renderer.DrawObstacles(obstacles, s.obstacles.Visible())
	s.renderer.DrawTrails(s.particles)
	s.renderer.DrawParticles(s.particles)
	if s.status != nil {
		st := s.status()
		st.Particles = len(s.particles)
		s.renderer.DrawHUD(st)
	}
	s.renderer.Present()
}

func (s *FrameScheduler) record(step physics.StepStats) {
	s.stats.Frames++
	s.stats.Collisions += step.Collisions
	s.stats.Overflows += step.Overflows
	s.stats.Removed += step.Removed
	if n := len(s.particles); n > s.stats.PeakParticles {
		s.stats.PeakParticles = n
	}
	if s.stats.Frames%historyEvery == 0 {
		s.stats.History = append(s.stats.History, float64(len(s.particles)))
		if len(s.stats.History) > historyMax {
			s.stats.History = s.stats.History[len(s.stats.History)-historyMax:]
		}
	}
	if s.stepHook != nil {
		s.stepHook(step)
	}
}

// Post queues fn to run on the scheduler goroutine between frames
// Returns false if the scheduler has stopped
func (s *FrameScheduler) Post(fn func()) bool {
	select {
	case <-s.stopChan:
		return false
	default:
	}
	select {
	case s.tasks <- fn:
		return true
	case <-s.stopChan:
		return false
	}
}

// Run ticks frames until ctx is cancelled, Stop is called, or handle returns false
// events may be nil when no input is wired
func (s *FrameScheduler) Run(ctx context.Context, events <-chan tcell.Event, handle func(tcell.Event) bool) {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.last = s.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case fn := <-s.tasks:
			fn()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if handle != nil && !handle(ev) {
				return
			}
		case <-ticker.C:
			// Stop may race the ticker; never draw after teardown
			select {
			case <-s.stopChan:
				return
			default:
			}
			s.Frame(s.clock.Now())
		}
	}
}

// Stop halts Run and rejects further posted tasks
func (s *FrameScheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}
