package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/waterfall/audio"
	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/config"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/content"
	"github.com/lixenwraith/waterfall/engine"
	"github.com/lixenwraith/waterfall/render"
	"github.com/lixenwraith/waterfall/store"
)

// newTestApp builds an app over a 40x21 simulation screen with no network fetches
func newTestApp(t *testing.T) (*app, *store.MemoryKV, *engine.MockTimeProvider) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 21)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Text.LiteraryURLs = nil

	kv := store.NewMemoryKV()
	a := newApp(context.Background(), cfg, screen, kv, audio.NewSoundManager(), 1)

	clock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	a.gctx.TimeProvider = clock
	return a, kv, clock
}

func TestAppMousePlacesPersistedRock(t *testing.T) {
	a, kv, _ := newTestApp(t)

	a.handler.Handle(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone))

	if a.field.Len() != 1 {
		t.Fatalf("Expected 1 rock, got %d", a.field.Len())
	}
	rock := a.field.Snapshot()[0]
	if rock.X != 45 || rock.Y != 50 {
		t.Errorf("Expected rock at cell centre (45, 50), got (%f, %f)", rock.X, rock.Y)
	}

	saved := store.Load[[]components.Obstacle](kv, constants.KeyRocks, nil)
	if len(saved) != 1 {
		t.Errorf("Expected rock persisted, got %d", len(saved))
	}
}

func TestAppSetSpeed(t *testing.T) {
	a, kv, _ := newTestApp(t)

	a.SetSpeed(5)
	if a.sched.Config().SpawnInterval != 2 {
		t.Errorf("Expected torrent spawn interval 2, got %f", a.sched.Config().SpawnInterval)
	}
	if got := store.NewPrefs(kv).SpeedLevel(3, 1, 5); got != 5 {
		t.Errorf("Expected persisted speed 5, got %d", got)
	}

	a.SetSpeed(9)
	if a.speed != 5 {
		t.Errorf("Out-of-range level must be ignored, got %d", a.speed)
	}
}

func TestAppSourceSwitching(t *testing.T) {
	a, kv, _ := newTestApp(t)

	if a.supply.Source() != content.SourceLiterary {
		t.Fatalf("Expected literary default, got %s", a.supply.Source())
	}

	a.CycleSource()
	if a.supply.Source() != content.SourceSutra {
		t.Errorf("Expected sutra after cycle, got %s", a.supply.Source())
	}
	if got := store.NewPrefs(kv).TextSource(""); got != string(content.SourceSutra) {
		t.Errorf("Expected persisted source sutra, got %q", got)
	}

	// No custom URL configured
	a.FetchCustom()
	if a.supply.Source() != content.SourceSutra {
		t.Errorf("FetchCustom without URL must not switch source, got %s", a.supply.Source())
	}
	if a.message == "" {
		t.Error("Expected a message explaining the missing URL")
	}
}

func TestAppApplyCustomFetch(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.supply.SetSource(content.SourceCustom)
	a.supply.SetLoading(content.SourceCustom, true)
	a.applyFetch(content.FetchResult{Source: content.SourceCustom, URL: "http://example.test", Texts: []string{"流れる水"}})

	if !a.supply.HasCustom() || a.supply.Loading() {
		t.Error("Expected custom text installed and loading cleared")
	}
	if a.supply.NextChar() != "流" {
		t.Error("Expected custom text to be active")
	}

	a.ResetCustom()
	if a.supply.Source() != content.SourceLiterary || a.supply.HasCustom() {
		t.Error("Expected reset back to literary without custom text")
	}
}

func TestAppApplyFailedFetchKeepsText(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.supply.SetSource(content.SourceCustom)
	a.supply.SetLoading(content.SourceCustom, true)
	a.applyFetch(content.FetchResult{Source: content.SourceCustom, Err: errors.New("boom")})

	if a.supply.Loading() {
		t.Error("Expected loading cleared after failure")
	}
	if !a.supply.HasText() {
		t.Error("Expected fallback text after a failed custom fetch")
	}
	if !strings.Contains(a.message, "boom") {
		t.Errorf("Expected failure message, got %q", a.message)
	}
}

func TestAppStatusMessageExpires(t *testing.T) {
	a, _, clock := newTestApp(t)

	a.ToggleRocks()
	st := a.status()
	if st.Message == "" || !st.RocksVisible {
		t.Fatalf("Expected visible rocks with a message, got %+v", st)
	}

	clock.Advance(messageDuration + time.Millisecond)
	if st = a.status(); st.Message != "" {
		t.Errorf("Expected message to expire, got %q", st.Message)
	}
}

func TestAppQuitKeyStopsHandling(t *testing.T) {
	a, _, _ := newTestApp(t)

	if !a.handler.Handle(tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone)) || !a.showHelp {
		t.Error("Expected help toggled and loop continuing")
	}
	if a.handler.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to stop the loop")
	}
}

func TestRenderSummary(t *testing.T) {
	st := engine.SessionStats{
		Frames:        600,
		Spawned:       120,
		Collisions:    42,
		PeakParticles: 80,
		History:       []float64{1, 10, 30, 55, 80, 70},
	}
	out := renderSummary(st, 10*time.Second)

	for _, want := range []string{"WATERFALL SESSION", "Collisions", "42", "80 particles", "particles on screen"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q", want)
		}
	}

	short := renderSummary(engine.SessionStats{History: []float64{3}}, 0)
	if strings.Contains(short, "particles on screen") {
		t.Error("Expected no graph for a single sample")
	}
}

func TestRenderHowto(t *testing.T) {
	out := renderHowto()
	for _, l := range render.HelpLines {
		if !strings.Contains(out, l) {
			t.Errorf("Expected how-to to contain %q", l)
		}
	}
}
