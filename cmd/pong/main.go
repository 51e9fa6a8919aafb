// pong is a two-player Pong game for the terminal and the desktop.
//
// Usage:
//
//	pong play               - Play in the current terminal
//	pong window             - Play in a desktop window
//	pong serve              - Start SSH server for remote play
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom config YAML (default: ~/.pong/pong.yaml, ./configs/pong.yaml, embedded)
//	--seed <value>      - Set RNG seed for reproducible launch directions
//	--tps <rate>        - Override the simulation tick rate
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagTPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard",
	Long: `Pong is the classic two-paddle game. Player 1 moves the left paddle
with W/S, Player 2 the right paddle with the arrow keys. A point goes to
the player on the far side whenever the ball leaves the arena.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  pong play
  pong play --seed 42
  pong window --config ./my-pong.yaml
  pong serve --ssh :2222
  pong config --default > ~/.pong/pong.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation tick rate (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
