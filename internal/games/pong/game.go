// Package pong implements two-player Pong: two paddles, one ball, and a score.
// Player 1 controls the left paddle with W/S, Player 2 the right paddle with
// the arrow keys. The package is pure simulation; frontends supply key events,
// the fixed tick, the arena size, and a Canvas to draw on.
package pong

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is the simulation driver. It owns the paddles, the ball, the score and
// the input state for the lifetime of a match.
type Game struct {
	paddles [2]Paddle
	ball    Ball
	score   Score
	input   core.InputState

	tuning Tuning
	rng    RandomSource
	logger *log.Logger
	ticks  uint64
}

// Option configures a Game.
type Option func(*Game)

// WithRandom sets the source used for launch directions.
func WithRandom(rng RandomSource) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds a math/rand source for launch directions.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
	}
}

// WithLogger sets the logger used for match events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a match in an arena of the given size: paddles centered on
// their sides, ball at the center with a random launch direction, score 0 - 0.
func New(t Tuning, arena core.Size, opts ...Option) *Game {
	g := &Game{
		tuning: t,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // gameplay randomness
	}

	g.paddles[PlayerOne] = spawnPaddle(PlayerOne, arena, t)
	g.paddles[PlayerTwo] = spawnPaddle(PlayerTwo, arena, t)
	g.ball.reset(g.rng, t.BallSpeed)
	return g
}

// KeyEvent records a raw key press or release.
func (g *Game) KeyEvent(k core.Key, pressed bool) {
	g.input.OnKeyEvent(k, pressed)
}

// Input returns the current input flags.
func (g *Game) Input() core.InputState {
	return g.input.Read()
}

// Tick advances the simulation by one fixed step of dt seconds in an arena of
// the given size: paddle motion, then ball integration and scoring, then
// collision resolution.
func (g *Game) Tick(dt float64, arena core.Size) {
	g.ticks++

	in := g.input.Read()
	for i := range g.paddles {
		g.paddles[i].move(in, g.tuning.PaddleSpeed, dt, arena)
	}

	g.ball.integrate(dt, arena)
	if scorer, ok := g.ball.exit(arena); ok {
		g.ball.reset(g.rng, g.tuning.BallSpeed)
		total := g.score.Add(scorer)
		g.logger.Debug("point scored",
			"player", scorer,
			"points", total,
			"score", g.score.Text(),
			"tick", g.ticks,
		)
	}

	resolveCollisions(&g.ball, g.paddles[:])
}

// Score returns the current score.
func (g *Game) Score() Score {
	return g.score
}

// ScoreText returns the score line shown on screen.
func (g *Game) ScoreText() string {
	return g.score.Text()
}
