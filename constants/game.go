package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the frame cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps dt after a stall (suspend, slow terminal) so particles don't tunnel
	MaxFrameDelta = 250 * time.Millisecond

	// EventBufferSize is the input event channel capacity
	EventBufferSize = 256
)
