package components

// Obstacle is a user-placed circular rock that deflects particles
// Immutable after creation
type Obstacle struct {
	ID     string  `toml:"id"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Radius float64 `toml:"radius"`
}
