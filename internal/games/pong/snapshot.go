package pong

// Snapshot is a read-only copy of a match, taken once per render frame.
type Snapshot struct {
	Tick    uint64
	Paddles [2]Paddle
	Ball    Ball
	Score   Score
}

// Snapshot returns the current match state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.ticks,
		Paddles: g.paddles,
		Ball:    g.ball,
		Score:   g.score,
	}
}

// Paddle returns the paddle of player p.
func (s Snapshot) Paddle(p Player) Paddle {
	return s.Paddles[p]
}
