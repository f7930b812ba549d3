package store

import (
	"log"
	"math"
	"strconv"
	"sync"

	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/vmath"
)

// ObstacleField owns the rock list and its visibility flag, persisting both on change
// Obstacles are append-only until cleared
type ObstacleField struct {
	mu        sync.RWMutex
	kv        KV
	rng       vmath.Rand
	obstacles []components.Obstacle
	visible   bool
}

// NewObstacleField loads the persisted layout; missing or malformed data yields an empty hidden field
func NewObstacleField(kv KV, rng vmath.Rand) *ObstacleField {
	f := &ObstacleField{kv: kv, rng: rng}

	loaded := Load[[]components.Obstacle](kv, constants.KeyRocks, nil)
	for _, o := range loaded {
		if !validObstacle(o) {
			log.Printf("store: dropping malformed obstacle %+v", o)
			continue
		}
		f.obstacles = append(f.obstacles, o)
	}
	f.visible = Load(kv, constants.KeyRockVisibility, false)
	return f
}

func validObstacle(o components.Obstacle) bool {
	for _, v := range []float64{o.X, o.Y, o.Radius} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return o.Radius > 0
}

// Add places a rock centred at (x, y) with a random radius and returns it
func (f *ObstacleField) Add(x, y float64) components.Obstacle {
	f.mu.Lock()
	o := components.Obstacle{
		ID:     strconv.FormatUint(f.rng.Uint64(), 36),
		X:      x,
		Y:      y,
		Radius: constants.ObstacleMinRadius + f.rng.Float64()*constants.ObstacleRadiusRange,
	}
	f.obstacles = append(f.obstacles, o)
	snapshot := f.snapshotLocked()
	f.mu.Unlock()

	f.persistRocks(snapshot)
	return o
}

// Clear removes every rock
func (f *ObstacleField) Clear() {
	f.mu.Lock()
	f.obstacles = nil
	f.mu.Unlock()

	f.persistRocks(nil)
}

// ToggleVisible flips rock rendering and returns the new state; physics is unaffected
func (f *ObstacleField) ToggleVisible() bool {
	f.mu.Lock()
	f.visible = !f.visible
	v := f.visible
	f.mu.Unlock()

	if err := Save(f.kv, constants.KeyRockVisibility, v); err != nil {
		log.Printf("store: %v", err)
	}
	return v
}

// Visible reports whether rocks are drawn
func (f *ObstacleField) Visible() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.visible
}

// Snapshot returns a copy of the rocks for one frame
func (f *ObstacleField) Snapshot() []components.Obstacle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snapshotLocked()
}

// Len returns the number of rocks
func (f *ObstacleField) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.obstacles)
}

func (f *ObstacleField) snapshotLocked() []components.Obstacle {
	if len(f.obstacles) == 0 {
		return nil
	}
	out := make([]components.Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

func (f *ObstacleField) persistRocks(obs []components.Obstacle) {
	if err := Save(f.kv, constants.KeyRocks, obs); err != nil {
		log.Printf("store: %v", err)
	}
}
