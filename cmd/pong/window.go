package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start a match. The arena follows the window
size; resizing it changes where the ball bounces and scores.

Controls:
  W/S        - Player 1 up/down
  Up/Down    - Player 2 up/down
  Esc        - Quit

Examples:
  pong window
  pong window --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width in pixels (0 = use config)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height in pixels (0 = use config)")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("pong", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger.Debug("config loaded", "source", source)

	width, height := cfg.Window.Width, cfg.Window.Height
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}

	return window.Run(cfg, cfg.Runtime(width, height, flagSeed), logger)
}
