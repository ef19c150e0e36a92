package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform uses it to adapt to screen size and to seed the simulation
// deterministically.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame driver rate in frames per second (default 60)
	Seed     int64 // RNG seed for deterministic rounds
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
