package constants

// Persisted preference keys
const (
	KeyRocks          = "waterfall-rocks"
	KeyRockVisibility = "rock-visibility"
	KeySpeedLevel     = "speed-level"
	KeyTextSource     = "text-source"
)

// DefaultStoreDir is where preference files live when no directory is configured
const DefaultStoreDir = ".waterfall"
