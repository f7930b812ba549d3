package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/waterfall/constants"
	"github.com/lixenwraith/waterfall/content"
	"github.com/lixenwraith/waterfall/physics"
)

// Config is the full application configuration
type Config struct {
	Physics physics.Config `toml:"physics"`
	Display Display        `toml:"display"`
	Text    Text           `toml:"text"`
	Store   Store          `toml:"store"`
}

// Display controls the terminal surface
type Display struct {
	CellWidth     int           `toml:"cell_width"`
	CellHeight    int           `toml:"cell_height"`
	FPS           int           `toml:"fps"`
	MaxFrameDelta time.Duration `toml:"max_frame_delta"`
	ColorMode     string        `toml:"color"` // auto, truecolor, 256
	Sound         bool          `toml:"sound"`
}

// Text controls the text sources
type Text struct {
	Source       string        `toml:"source"` // overrides the stored preference when set
	LiteraryURLs []string      `toml:"literary_urls"`
	CustomURL    string        `toml:"custom_url"`
	FetchTimeout time.Duration `toml:"fetch_timeout"`
	Retries      int           `toml:"retries"`
	Backoff      time.Duration `toml:"backoff"`
}

// Store locates persisted preferences
type Store struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Physics: physics.DefaultConfig(),
		Display: Display{
			CellWidth:     constants.DefaultCellWidth,
			CellHeight:    constants.DefaultCellHeight,
			FPS:           int(time.Second / constants.FrameUpdateInterval),
			MaxFrameDelta: constants.MaxFrameDelta,
			ColorMode:     "auto",
		},
		Text: Text{
			LiteraryURLs: append([]string(nil), content.LiteraryURLs...),
			FetchTimeout: constants.FetchTimeout,
			Retries:      constants.FetchRetries,
			Backoff:      constants.FetchBackoff,
		},
		Store: Store{
			Dir: constants.DefaultStoreDir,
		},
	}
}

// Load decodes path over the defaults; an empty path or missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("config: unknown key %s ignored", key)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the loop cannot run with
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.SpawnInterval <= 0:
		return fmt.Errorf("physics.spawn_interval must be positive, got %v", p.SpawnInterval)
	case p.TrailLength < 0:
		return fmt.Errorf("physics.trail_length must not be negative, got %d", p.TrailLength)
	case p.WaterfallWidth <= 0:
		return fmt.Errorf("physics.waterfall_width must be positive, got %v", p.WaterfallWidth)
	case p.DeflectionDamping < 0 || p.DeflectionDamping > 1:
		return fmt.Errorf("physics.deflection_damping must be within [0, 1], got %v", p.DeflectionDamping)
	}

	d := c.Display
	switch {
	case d.CellWidth <= 0 || d.CellHeight <= 0:
		return fmt.Errorf("display cell size must be positive, got %dx%d", d.CellWidth, d.CellHeight)
	case d.FPS <= 0 || d.FPS > 240:
		return fmt.Errorf("display.fps must be within [1, 240], got %d", d.FPS)
	case d.MaxFrameDelta < 0:
		return fmt.Errorf("display.max_frame_delta must not be negative, got %v", d.MaxFrameDelta)
	}
	switch d.ColorMode {
	case "auto", "truecolor", "256":
	default:
		return fmt.Errorf("display.color must be auto, truecolor or 256, got %q", d.ColorMode)
	}

	if c.Text.Source != "" {
		if _, ok := content.ParseSource(c.Text.Source); !ok {
			return fmt.Errorf("text.source %q is not one of literary, sutra, custom", c.Text.Source)
		}
	}
	if c.Text.CustomURL != "" {
		if err := content.ValidateURL(c.Text.CustomURL); err != nil {
			return fmt.Errorf("text.custom_url: %w", err)
		}
	}
	return nil
}

// FrameInterval is the ticker period for the configured frame rate
func (d Display) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.FPS)
}
