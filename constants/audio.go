package constants

import "time"

// Audio Constants
const (
	// ChimeCooldown rate-limits collision chimes
	ChimeCooldown = 120 * time.Millisecond

	// ChimeDuration is the length of one collision chime
	ChimeDuration = 400 * time.Millisecond

	// DropDuration is the length of the rock placement sound
	DropDuration = 150 * time.Millisecond
)
