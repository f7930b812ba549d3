package main

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/audio"
	"github.com/lixenwraith/waterfall/config"
	"github.com/lixenwraith/waterfall/content"
	"github.com/lixenwraith/waterfall/engine"
	"github.com/lixenwraith/waterfall/input"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/lixenwraith/waterfall/render"
	"github.com/lixenwraith/waterfall/store"
	"github.com/lixenwraith/waterfall/systems"
	"github.com/lixenwraith/waterfall/vmath"
)

const messageDuration = 3 * time.Second

// app wires the subsystems together and implements input.Actions
// All methods except fetch delivery run on the scheduler goroutine
type app struct {
	ctx    context.Context
	cfg    config.Config
	screen tcell.Screen
	gctx   *engine.Context

	sched   *engine.FrameScheduler
	handler *input.Handler
	supply  *content.Supply
	fetcher *content.Fetcher
	field   *store.ObstacleField
	prefs   *store.Prefs
	sound   *audio.SoundManager
	rng     *vmath.FastRand

	speed        int
	showHelp     bool
	message      string
	messageUntil time.Time
}

// newApp builds the object graph over an initialized screen
func newApp(ctx context.Context, cfg config.Config, screen tcell.Screen, kv store.KV, sound *audio.SoundManager, seed uint64) *app {
	gctx := engine.NewContext(screen, cfg.Display.CellWidth, cfg.Display.CellHeight)
	prefs := store.NewPrefs(kv)

	source, _ := content.ParseSource(prefs.TextSource(string(content.SourceLiterary)))
	if cfg.Text.Source != "" {
		source, _ = content.ParseSource(cfg.Text.Source)
	}

	a := &app{
		ctx:     ctx,
		cfg:     cfg,
		screen:  screen,
		gctx:    gctx,
		supply:  content.NewSupply(source, vmath.NewFastRand(seed+1)),
		fetcher: content.NewFetcher(cfg.Text.FetchTimeout, cfg.Text.Retries, cfg.Text.Backoff),
		field:   store.NewObstacleField(kv, vmath.NewFastRand(seed+2)),
		prefs:   prefs,
		sound:   sound,
		rng:     vmath.NewFastRand(seed),
		speed:   prefs.SpeedLevel(physics.DefaultSpeedLevel, physics.MinSpeedLevel, physics.MaxSpeedLevel),
	}

	a.sched = engine.NewFrameScheduler(engine.SchedulerDeps{
		Canvas:    gctx,
		Clock:     gctx.TimeProvider,
		Spawner:   systems.NewSpawnSystem(a.supply, vmath.NewFastRand(seed+3)),
		Updater:   systems.NewFlowSystem(vmath.NewFastRand(seed+4)),
		Obstacles: a.field,
		Renderer:  render.NewTerminalRenderer(screen, gctx.CellWidth, gctx.CellHeight, int64(seed)),
	}, cfg.Physics.WithSpeed(a.speed), cfg.Display.FrameInterval(), cfg.Display.MaxFrameDelta)

	a.sched.SetStatusProvider(a.status)
	a.sched.SetStepHook(func(st physics.StepStats) {
		if st.Collisions > 0 {
			a.sound.PlayChime(st.Collisions)
		}
	})
	a.handler = input.NewHandler(gctx, a)
	return a
}

// start kicks off the initial fetches
func (a *app) start() {
	if urls := a.cfg.Text.LiteraryURLs; len(urls) > 0 {
		a.fetch(content.SourceLiterary, urls[a.rng.Intn(len(urls))])
	}
	if a.cfg.Text.CustomURL != "" {
		a.FetchCustom()
	}
}

// run blocks until quit, signal or context cancellation
func (a *app) run(events <-chan tcell.Event) {
	a.sched.Run(a.ctx, events, a.handler.Handle)
	a.sched.Stop()
}

// fetch starts an async fetch whose result is applied on the scheduler goroutine
func (a *app) fetch(src content.Source, raw string) {
	a.supply.SetLoading(src, true)
	a.fetcher.FetchAsync(a.ctx, src, raw, func(r content.FetchResult) {
		a.sched.Post(func() { a.applyFetch(r) })
	})
}

func (a *app) applyFetch(r content.FetchResult) {
	a.supply.Apply(r)
	if r.Err != nil {
		if r.Source == content.SourceCustom {
			a.flash("fetch failed: " + r.Err.Error())
		}
		return
	}
	if r.Source == content.SourceCustom {
		a.flash("custom text loaded")
	}
}

func (a *app) flash(msg string) {
	a.message = msg
	a.messageUntil = a.gctx.TimeProvider.Now().Add(messageDuration)
}

func (a *app) status() engine.Status {
	if a.message != "" && a.gctx.TimeProvider.Now().After(a.messageUntil) {
		a.message = ""
	}
	return engine.Status{
		Source:       a.supply.Source().Label(),
		SpeedLevel:   a.speed,
		Rocks:        a.field.Len(),
		RocksVisible: a.field.Visible(),
		Loading:      a.supply.Loading(),
		Message:      a.message,
		ShowHelp:     a.showHelp,
	}
}

// Quit is handled by the scheduler returning from Run
func (a *app) Quit() {
	log.Printf("waterfall: quit requested")
}

func (a *app) Resize() {
	a.screen.Sync()
}

func (a *app) ToggleHelp() {
	a.showHelp = !a.showHelp
}

func (a *app) ToggleMute() {
	if a.sound.ToggleMute() {
		a.flash("sound muted")
	} else {
		a.flash("sound on")
	}
}

func (a *app) PlaceRock(x, y float64) {
	a.field.Add(x, y)
	a.sound.PlayDrop()
}

func (a *app) ToggleRocks() {
	if a.field.ToggleVisible() {
		a.flash("rocks visible")
	} else {
		a.flash("rocks hidden")
	}
}

func (a *app) ClearRocks() {
	a.field.Clear()
	a.flash("rocks cleared")
}

func (a *app) SetSpeed(level int) {
	if level < physics.MinSpeedLevel || level > physics.MaxSpeedLevel {
		return
	}
	a.speed = level
	a.sched.SetConfig(a.cfg.Physics.WithSpeed(level))
	a.prefs.SetSpeedLevel(level)
	a.flash("speed: " + physics.Preset(level).Name)
}

func (a *app) CycleSource() {
	src := a.supply.CycleSource()
	a.prefs.SetTextSource(string(src))
	if src == content.SourceCustom && !a.supply.HasCustom() {
		a.flash(src.Label() + " (no text yet, press u)")
		return
	}
	a.flash(src.Label())
}

func (a *app) FetchCustom() {
	raw := a.cfg.Text.CustomURL
	if raw == "" {
		a.flash("no custom URL, start with -url")
		return
	}
	if err := content.ValidateURL(raw); err != nil {
		a.flash(err.Error())
		return
	}
	a.supply.SetSource(content.SourceCustom)
	a.prefs.SetTextSource(string(content.SourceCustom))
	a.fetch(content.SourceCustom, raw)
	a.flash("fetching " + raw)
}

func (a *app) ResetCustom() {
	a.supply.ResetCustom()
	a.prefs.SetTextSource(string(content.SourceLiterary))
	a.flash(content.SourceLiterary.Label())
}
