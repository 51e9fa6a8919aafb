package core

import "time"

// RuntimeConfig contains the settings a frontend passes to a running match.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in cells (terminal) or pixels (window)
	ScreenH    int   // Screen height in cells (terminal) or pixels (window)
	TickRate   int   // Fixed simulation ticks per second (default 64)
	FrameRate  int   // Render frames per second (default 60)
	MaxCatchUp int   // Most ticks run for one frame before backlog is dropped
	Seed       int64 // RNG seed for the ball launch direction, 0 = time based
}

// ResolveSeed returns the configured seed, or a time based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
