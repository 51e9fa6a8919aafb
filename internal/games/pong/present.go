package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Drawing colors.
const (
	PaddleColor = core.ColorWhite
	BallColor   = core.ColorWhite
	ScoreColor  = core.ColorBrightWhite
)

// ScoreTextPos returns where the score line is drawn: horizontally centered,
// ten percent of the arena height above the bottom edge.
func ScoreTextPos(arena core.Size) core.Vec2 {
	return core.Vec2{X: 0, Y: -arena.HalfH() + arena.H*0.1}
}

// Present draws one frame of s. It reads state only.
func Present(c core.Canvas, s Snapshot, arena core.Size, t Tuning) {
	for _, p := range s.Paddles {
		c.DrawRect(
			core.Vec2{X: p.X, Y: p.Y},
			core.Vec2{X: p.Width, Y: p.Height},
			PaddleColor,
		)
	}

	c.DrawRect(s.Ball.Pos, core.Vec2{X: t.BallSize, Y: t.BallSize}, BallColor)

	c.DrawText(s.Score.Text(), ScoreTextPos(arena), DefaultScoreSize, ScoreColor)
}

// Draw presents the current state of g.
func (g *Game) Draw(c core.Canvas, arena core.Size) {
	Present(c, g.Snapshot(), arena, g.tuning)
}
