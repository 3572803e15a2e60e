package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The viewport is measured in screen pixels; the game derives its design
// space from it.
type RuntimeConfig struct {
	ViewportW float64 // Viewport width in screen pixels
	ViewportH float64 // Viewport height in screen pixels
	TickRate  int     // Simulation ticks per second (default 60)
	Seed      string  // Seed string; empty means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 412,
		ViewportH: 915,
		TickRate:  60,
	}
}
