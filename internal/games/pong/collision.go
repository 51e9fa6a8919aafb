package pong

// resolveCollisions reflects the ball horizontally for every paddle whose
// rectangle strictly contains it. Paddles are checked independently, so a
// ball inside both rectangles is flipped twice and keeps its direction.
// There is no push-out; the ball may sit inside a paddle for a tick.
func resolveCollisions(b *Ball, paddles []Paddle) {
	for _, p := range paddles {
		if p.Box().ContainsStrict(b.Pos) {
			b.Vel.X = -b.Vel.X
		}
	}
}
