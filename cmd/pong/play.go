package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a match in the current terminal. Both players share the keyboard.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Esc/Q      - Quit

Terminals report key presses but not releases: a paddle keeps moving while
its key repeats and stops shortly after the key is let go (terminal.key_delay
before auto-repeat starts, terminal.key_hold between repeats).

Logs are discarded unless --log-file is set.

Examples:
  pong play
  pong play --seed 42
  pong play --log-level debug --log-file pong.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pong", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger.Debug("config loaded", "source", source)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(cfg, cfg.Runtime(width, height, flagSeed), logger)
}
