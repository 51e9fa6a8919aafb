package config

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func TestDefaultTuningMatchesGame(t *testing.T) {
	if got := DefaultPongConfig().Tuning(); got != pong.DefaultTuning() {
		t.Errorf("Tuning() = %+v, expected %+v", got, pong.DefaultTuning())
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Physics.BallSpeed = 0
	cfg.Loop.TickRate = -1
	cfg.Terminal.KeyHold = 0
	cfg.Terminal.KeyDelay = -time.Second
	cfg.Serve.Address = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}

	for _, want := range []string{
		"physics.ball_speed",
		"loop.tick_rate",
		"terminal.key_hold",
		"terminal.key_delay",
		"serve.address",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
}

func TestRuntime(t *testing.T) {
	rt := DefaultPongConfig().Runtime(120, 40, 7)

	if rt.ScreenW != 120 || rt.ScreenH != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", rt.ScreenW, rt.ScreenH)
	}
	if rt.TickRate != 64 || rt.FrameRate != 60 || rt.MaxCatchUp != 8 {
		t.Errorf("rates = %d/%d/%d, expected 64/60/8", rt.TickRate, rt.FrameRate, rt.MaxCatchUp)
	}
	if rt.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", rt.Seed)
	}
}

func TestDefaultsHelper(t *testing.T) {
	cfg := DefaultPongConfig()
	if cfg.Terminal.KeyDelay != 500*time.Millisecond {
		t.Errorf("KeyDelay = %v, expected 500ms", cfg.Terminal.KeyDelay)
	}
	if cfg.Terminal.KeyHold != 150*time.Millisecond {
		t.Errorf("KeyHold = %v, expected 150ms", cfg.Terminal.KeyHold)
	}
	if cfg.Serve.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.Serve.IdleTimeout)
	}
}
