package constants

// Virtual canvas: every terminal cell covers CellWidth x CellHeight pixels
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// HUD Layout Constants
const (
	// HUDHeight is the number of rows reserved at the bottom for the status line
	HUDHeight = 1

	// SpeedMeterWidth is the number of cells of the speed meter
	SpeedMeterWidth = 10

	// LoadingSpinner frames shown while text is being fetched
	LoadingSpinner = "|/-\\"
)

// Glow
const (
	// GlowPulseRate is the angular rate of the glow pulse per ms of age
	GlowPulseRate = 0.003

	// TrailOpacityScale dims trail samples relative to the glyph
	TrailOpacityScale = 0.3

	// OverflowOpacityScale dims overflowing glyphs
	OverflowOpacityScale = 0.7
)
