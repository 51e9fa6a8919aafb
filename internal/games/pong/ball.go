package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// RandomSource yields uniform numbers in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Ball is the single moving body. Collisions treat it as a point.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// launchVelocity samples a uniformly random direction (each axis drawn from
// [-1, 1), then normalized) scaled to speed.
func launchVelocity(rng RandomSource, speed float64) core.Vec2 {
	dir := core.Vec2{
		X: rng.Float64()*2 - 1,
		Y: rng.Float64()*2 - 1,
	}
	return dir.Normalize().Scale(speed)
}

// reset recenters the ball and relaunches it in a new random direction.
func (b *Ball) reset(rng RandomSource, speed float64) {
	b.Pos = core.Vec2{}
	b.Vel = launchVelocity(rng, speed)
}

// integrate moves the ball by one tick and flips vy when it is past the top
// or bottom edge. The position is not pulled back inside.
func (b *Ball) integrate(dt float64, arena core.Size) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.Y > arena.HalfH() || b.Pos.Y < -arena.HalfH() {
		b.Vel.Y = -b.Vel.Y
	}
}

// exit reports which player scores when the ball has left the arena sideways.
// Leaving on the right scores for player one, on the left for player two.
func (b *Ball) exit(arena core.Size) (Player, bool) {
	switch {
	case b.Pos.X > arena.HalfW():
		return PlayerOne, true
	case b.Pos.X < -arena.HalfW():
		return PlayerTwo, true
	}
	return 0, false
}
