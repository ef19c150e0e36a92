package sim

// LifeStats aggregates counters for a single life. Finalized on crash
// and carried on the crash event; reset on respawn.
type LifeStats struct {
	Apples            int
	Fruits            int
	PortalsEntered    int
	PassagesCompleted int
	TopSpeed          float64 // cells per second, including boost
	StartedAt         int64   // simulation time, ms
	DurationMS        int64   // set when the life ends
}

// RunStats aggregates a whole round across all lives. Persisted once on
// game over.
type RunStats struct {
	Seed              int64
	Score             int
	Level             int
	Apples            int
	Fruits            int
	PortalsEntered    int
	PassagesCompleted int
	MaxLength         int
	TopSpeed          float64
	DurationMS        int64
	LivesUsed         int
}

// noteSpeed records a new top speed on both scopes if it beats the
// current ones.
func (g *Game) noteSpeed(cellsPerSec float64) {
	if cellsPerSec > g.life.TopSpeed {
		g.life.TopSpeed = cellsPerSec
	}
	if cellsPerSec > g.run.TopSpeed {
		g.run.TopSpeed = cellsPerSec
	}
}
