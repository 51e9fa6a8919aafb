// Package window runs pong in a desktop window using Ebitengine.
// Ebitengine calls Update at a fixed rate, so every Update is one
// simulation tick.
package window

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Game adapts a pong match to ebiten.Game.
type Game struct {
	match  *pong.Game
	arena  core.Size
	tps    int
	logger *log.Logger

	keys   []ebiten.Key
	labels map[string]*ebiten.Image
}

// NewGame creates a match for a window of cfg.ScreenW x cfg.ScreenH pixels.
func NewGame(pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 64
	}

	arena := core.Size{W: float64(cfg.ScreenW), H: float64(cfg.ScreenH)}
	return &Game{
		match: pong.New(pc.Tuning(), arena,
			pong.WithSeed(cfg.ResolveSeed()),
			pong.WithLogger(logger),
		),
		arena:  arena,
		tps:    tickRate,
		logger: logger,
		labels: make(map[string]*ebiten.Image),
	}
}

// Match returns the simulation driven by the window.
func (g *Game) Match() *pong.Game {
	return g.match
}

// Update forwards key transitions and runs one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.forward(g.keys, true)
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	g.forward(g.keys, false)

	g.match.Tick(1/float64(g.tps), g.arena)
	return nil
}

// forward records control key transitions on the match.
func (g *Game) forward(keys []ebiten.Key, pressed bool) {
	for _, k := range keys {
		if ck := translate(k); ck != core.KeyNone {
			g.match.KeyEvent(ck, pressed)
		}
	}
}

// Draw presents the match on a black background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.match.Draw(&imageCanvas{dst: screen, arena: g.arena, labels: g.labels}, g.arena)
}

// Layout uses the window size as the arena size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := core.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	if size != g.arena {
		g.arena = size
		g.logger.Debug("arena resized", "width", size.W, "height", size.H)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(pc config.PongConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	g := NewGame(pc, cfg, logger)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(pc.Window.Title)
	if pc.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(g.tps)

	g.logger.Info("match started", "width", cfg.ScreenW, "height", cfg.ScreenH, "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	g.logger.Info("match ended", "score", g.match.ScoreText())
	return nil
}
