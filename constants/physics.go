package constants

// Collision
const (
	// ParticleRadius is the glyph's collision radius in pixels
	ParticleRadius = 8.0

	// PushMargin is the distance from the rock surface a deflected particle is placed at
	PushMargin = 10.0
)

// Trail
const (
	// TrailDecay is the per-rank multiplicative opacity factor of trail samples
	TrailDecay = 0.8
)

// Crowding / overflow
const (
	// CrowdWindow is the half-extent in both axes of the neighbourhood counted for crowding
	CrowdWindow = 50.0

	// CrowdStillVelocity is the vy below which a neighbour counts as piled up
	CrowdStillVelocity = 0.1

	// OverflowTriggerVelocity is the own vy below which a crowded particle overflows
	OverflowTriggerVelocity = 0.3

	// OverflowJitter is the random vy added on top of the overflow velocity
	OverflowJitter = 0.25

	// OverflowSpread multiplies vx when a particle spills sideways
	OverflowSpread = 1.3
)

// Confinement
const (
	// WallBounce damps the inward vx after a column edge clamp
	WallBounce = 0.5
)

// Fade and removal
const (
	// BottomFadeMargin is the band above the canvas bottom where particles fade
	BottomFadeMargin = 100.0

	// BottomFadeRate is opacity lost per ms inside the bottom band
	BottomFadeRate = 0.01

	// AgeFadeThreshold is the age in ms after which particles start to fade
	AgeFadeThreshold = 8000.0

	// AgeFadeRate is opacity lost per ms past the age threshold
	AgeFadeRate = 0.005

	// RemovalMargin is how far below the canvas a particle may travel before removal
	RemovalMargin = 100.0

	// OpacityEpsilon is the opacity at or below which a particle is dead
	OpacityEpsilon = 0.01
)

// Spawning
const (
	// SpawnY is the initial y just above the visible area
	SpawnY = -20.0

	// SpawnVXRange is the symmetric range of the initial horizontal velocity
	SpawnVXRange = 0.025

	// SpawnVYJitter is the random positive increment over the minimum vertical velocity
	SpawnVYJitter = 0.15
)

// Obstacles
const (
	ObstacleMinRadius   = 25.0
	ObstacleRadiusRange = 15.0
)
