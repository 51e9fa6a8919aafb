package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func newTestGame() *Game {
	pc := config.DefaultPongConfig()
	return NewGame(pc, pc.Runtime(800, 600, 7), nil)
}

func TestScreenRect(t *testing.T) {
	arena := core.Size{W: 800, H: 600}

	x, y, w, h := screenRect(core.Vec2{X: -390, Y: 0}, core.Vec2{X: 10, Y: 100}, arena)
	assert.Equal(t, []float64{5, 250, 10, 100}, []float64{x, y, w, h})

	// +Y is up in the arena and down on screen.
	_, y, _, _ = screenRect(core.Vec2{Y: 250}, core.Vec2{X: 10, Y: 100}, arena)
	assert.Equal(t, 0.0, y)
}

func TestTextLayout(t *testing.T) {
	arena := core.Size{W: 800, H: 600}

	x, y, scale := textLayout(5, pong.ScoreTextPos(arena), 48, arena)

	assert.Equal(t, 3.0, scale)
	assert.Equal(t, 400-5*6*3.0/2, x)
	assert.Equal(t, 540-24.0, y)
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, core.KeyW, translate(ebiten.KeyW))
	assert.Equal(t, core.KeyS, translate(ebiten.KeyS))
	assert.Equal(t, core.KeyArrowUp, translate(ebiten.KeyArrowUp))
	assert.Equal(t, core.KeyArrowDown, translate(ebiten.KeyArrowDown))
	assert.Equal(t, core.KeyNone, translate(ebiten.KeyA))
}

func TestForwardKeyTransitions(t *testing.T) {
	g := newTestGame()

	g.forward([]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowDown, ebiten.KeySpace}, true)
	in := g.Match().Input()
	assert.True(t, in.KeyW)
	assert.True(t, in.ArrowDown)

	g.forward([]ebiten.Key{ebiten.KeyW}, false)
	in = g.Match().Input()
	assert.False(t, in.KeyW)
	assert.True(t, in.ArrowDown)
}

func TestLayoutTracksWindowSize(t *testing.T) {
	g := newTestGame()
	assert.Equal(t, core.Size{W: 800, H: 600}, g.arena)

	w, h := g.Layout(1024, 768)

	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
	assert.Equal(t, core.Size{W: 1024, H: 768}, g.arena)

	// Paddles are placed at spawn only.
	assert.InDelta(t, -390, g.Match().Snapshot().Paddle(pong.PlayerOne).X, 1e-9)
}

func TestRGBAFallback(t *testing.T) {
	assert.Equal(t, palette[core.ColorDefault], rgba(core.Color(250)))
	assert.Equal(t, palette[core.ColorWhite], rgba(core.ColorWhite))
}
