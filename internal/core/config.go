package core

// RuntimeConfig contains configuration passed to a frontend at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters (terminal) or pixels (window)
	TickRate int // Loop iterations per second requested from the frontend
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
