package systems

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/waterfall/components"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/physics"
	"github.com/lixenwraith/waterfall/vmath"
)

// TextSupply produces the character stream that drives spawning
type TextSupply interface {
	HasText() bool
	NextChar() string
	Loading() bool
}

// SpawnSystem introduces at most one particle per invocation at the top of the column
type SpawnSystem struct {
	supply TextSupply
	rng    vmath.Rand
}

// NewSpawnSystem creates a spawn system drawing characters from supply
func NewSpawnSystem(supply TextSupply, rng vmath.Rand) *SpawnSystem {
	return &SpawnSystem{
		supply: supply,
		rng:    rng,
	}
}

// Spawn appends a new particle unless the supply is loading, empty, or yields whitespace
func (s *SpawnSystem) Spawn(particles []components.Particle, cfg physics.Config, canvas physics.Canvas) ([]components.Particle, bool) {
	if s.supply.Loading() || !s.supply.HasText() {
		return particles, false
	}

	ch := s.supply.NextChar()
	if isBlank(ch) {
		return particles, false
	}

	bounds := physics.WaterfallBounds(canvas.Width, cfg.WaterfallWidth)

	p := components.Particle{
		ID:      strconv.FormatUint(s.rng.Uint64(), 36),
		Char:    ch,
		X:       bounds.Left + s.rng.Float64()*bounds.Width,
		Y:       constants.SpawnY,
		VX:      (s.rng.Float64() - 0.5) * constants.SpawnVXRange,
		VY:      cfg.MinVelocity + s.rng.Float64()*constants.SpawnVYJitter,
		Opacity: 1,
	}
	return append(particles, p), true
}

// isBlank reports empty clusters and clusters made only of whitespace
func isBlank(ch string) bool {
	return strings.TrimFunc(ch, unicode.IsSpace) == ""
}
