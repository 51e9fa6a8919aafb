package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a vertical slider owned by one player.
// X is fixed at spawn; Y moves every tick and stays clamped to the arena.
type Paddle struct {
	Owner  Player
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// spawnPaddle places a player's paddle one paddle-width in from its side of
// the arena, vertically centered.
func spawnPaddle(owner Player, arena core.Size, t Tuning) Paddle {
	x := -arena.HalfW() + t.PaddleWidth
	if owner == PlayerTwo {
		x = arena.HalfW() - t.PaddleWidth
	}
	return Paddle{
		Owner:  owner,
		X:      x,
		Width:  t.PaddleWidth,
		Height: t.PaddleHeight,
	}
}

// Box returns the paddle rectangle.
func (p Paddle) Box() core.Box {
	return core.Box{
		Center: core.Vec2{X: p.X, Y: p.Y},
		Size:   core.Vec2{X: p.Width, Y: p.Height},
	}
}

// move advances the paddle by one tick of input and clamps it so its full
// height stays inside the arena.
func (p *Paddle) move(in core.InputState, speed, dt float64, arena core.Size) {
	y := p.Y + p.Owner.direction(in)*speed*dt

	hi := arena.HalfH() - p.Height/2
	lo := -arena.HalfH() + p.Height/2
	// Upper bound first, lower bound last: an arena shorter than the paddle
	// pins it to lo.
	p.Y = math.Max(math.Min(y, hi), lo)
}
