package physics

// Config is the tunable parameter set for one frame
// Passed by value so a frame always sees one consistent snapshot
type Config struct {
	Gravity           float64 `toml:"gravity"`            // px/ms²
	Turbulence        float64 `toml:"turbulence"`         // vx perturbation scale per ms
	DeflectionDamping float64 `toml:"deflection_damping"` // velocity factor after a bounce
	MinVelocity       float64 `toml:"min_velocity"`       // floor for vy after spawn and bounce
	OverflowVelocity  float64 `toml:"overflow_velocity"`  // vy given to overflowing particles
	SpawnInterval     float64 `toml:"spawn_interval"`     // ms between spawns
	TrailLength       int     `toml:"trail_length"`
	MaxNearbyChars    int     `toml:"max_nearby_chars"` // crowding threshold
	WaterfallWidth    float64 `toml:"waterfall_width"`  // confinement column width in px
}

// DefaultConfig returns the canonical parameter set
func DefaultConfig() Config {
	return Config{
		Gravity:           0.001,
		Turbulence:        0.000025,
		DeflectionDamping: 0.7,
		MinVelocity:       0.25,
		OverflowVelocity:  0.5,
		SpawnInterval:     4,
		TrailLength:       8,
		MaxNearbyChars:    8,
		WaterfallWidth:    300,
	}
}

// SpeedPreset overrides the speed-related subset of Config
type SpeedPreset struct {
	Level         int
	Name          string
	Gravity       float64
	SpawnInterval float64
	MinVelocity   float64
}

// SpeedPresets are the five user-selectable speed levels
var SpeedPresets = []SpeedPreset{
	{Level: 1, Name: "calm", Gravity: 0.0005, SpawnInterval: 8, MinVelocity: 0.15},
	{Level: 2, Name: "breeze", Gravity: 0.0008, SpawnInterval: 6, MinVelocity: 0.2},
	{Level: 3, Name: "harmony", Gravity: 0.001, SpawnInterval: 4, MinVelocity: 0.25},
	{Level: 4, Name: "surge", Gravity: 0.0015, SpawnInterval: 3, MinVelocity: 0.3},
	{Level: 5, Name: "torrent", Gravity: 0.002, SpawnInterval: 2, MinVelocity: 0.4},
}

const (
	MinSpeedLevel     = 1
	MaxSpeedLevel     = 5
	DefaultSpeedLevel = 3
)

// Preset returns the preset for level, falling back to the default level
func Preset(level int) SpeedPreset {
	for _, p := range SpeedPresets {
		if p.Level == level {
			return p
		}
	}
	return SpeedPresets[DefaultSpeedLevel-1]
}

// WithSpeed returns a copy of base with the speed preset applied
func (c Config) WithSpeed(level int) Config {
	p := Preset(level)
	c.Gravity = p.Gravity
	c.SpawnInterval = p.SpawnInterval
	c.MinVelocity = p.MinVelocity
	return c
}
