// Package config provides YAML-based configuration loading for pong.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// PongConfig contains all configuration for a pong session.
type PongConfig struct {
	Physics  PongPhysics    `yaml:"physics"`
	Paddles  PongPaddles    `yaml:"paddles"`
	Ball     PongBall       `yaml:"ball"`
	Loop     LoopConfig     `yaml:"loop"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Serve    ServeConfig    `yaml:"serve"`
}

// PongPhysics defines movement speeds.
type PongPhysics struct {
	PaddleSpeed float64 `yaml:"paddle_speed"`
	BallSpeed   float64 `yaml:"ball_speed"`
}

// PongPaddles defines paddle dimensions.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines the drawn ball size.
type PongBall struct {
	Size float64 `yaml:"size"`
}

// LoopConfig defines simulation and render rates.
type LoopConfig struct {
	TickRate   int `yaml:"tick_rate"`
	FrameRate  int `yaml:"frame_rate"`
	MaxCatchUp int `yaml:"max_catch_up"`
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// TerminalConfig defines how arena units map to terminal cells.
type TerminalConfig struct {
	CellWidth  float64       `yaml:"cell_width"`
	CellHeight float64       `yaml:"cell_height"`
	KeyDelay   time.Duration `yaml:"key_delay"`
	KeyHold    time.Duration `yaml:"key_hold"`
}

// ServeConfig defines the SSH server.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Tuning returns the simulation constants.
func (c PongConfig) Tuning() pong.Tuning {
	return pong.Tuning{
		PaddleSpeed:  c.Physics.PaddleSpeed,
		PaddleWidth:  c.Paddles.Width,
		PaddleHeight: c.Paddles.Height,
		BallSpeed:    c.Physics.BallSpeed,
		BallSize:     c.Ball.Size,
	}
}

// Runtime returns the runtime settings for a screen of the given size.
func (c PongConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		TickRate:   c.Loop.TickRate,
		FrameRate:  c.Loop.FrameRate,
		MaxCatchUp: c.Loop.MaxCatchUp,
		Seed:       seed,
	}
}

// Validate reports every out-of-range setting.
func (c PongConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %v", name, v))
		}
	}

	positive("physics.paddle_speed", c.Physics.PaddleSpeed)
	positive("physics.ball_speed", c.Physics.BallSpeed)
	positive("paddles.width", c.Paddles.Width)
	positive("paddles.height", c.Paddles.Height)
	positive("ball.size", c.Ball.Size)
	positive("loop.tick_rate", float64(c.Loop.TickRate))
	positive("loop.frame_rate", float64(c.Loop.FrameRate))
	positive("loop.max_catch_up", float64(c.Loop.MaxCatchUp))
	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("terminal.cell_width", c.Terminal.CellWidth)
	positive("terminal.cell_height", c.Terminal.CellHeight)
	positive("terminal.key_delay", float64(c.Terminal.KeyDelay))
	positive("terminal.key_hold", float64(c.Terminal.KeyHold))

	if c.Serve.Address == "" {
		errs = append(errs, errors.New("config: serve.address must not be empty"))
	}

	return errors.Join(errs...)
}
