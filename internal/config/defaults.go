package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Physics: PongPhysics{
			PaddleSpeed: pong.DefaultPaddleSpeed,
			BallSpeed:   pong.DefaultBallSpeed,
		},
		Paddles: PongPaddles{
			Width:  pong.DefaultPaddleWidth,
			Height: pong.DefaultPaddleHeight,
		},
		Ball: PongBall{
			Size: pong.DefaultBallSize,
		},
		Loop: LoopConfig{
			TickRate:   64,
			FrameRate:  60,
			MaxCatchUp: 8,
		},
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Pong",
			Resizable: true,
		},
		Terminal: TerminalConfig{
			CellWidth:  10,
			CellHeight: 20,
			KeyDelay:   500 * time.Millisecond,
			KeyHold:    150 * time.Millisecond,
		},
		Serve: ServeConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
