package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pong SSH server",
	Long: `Start an SSH server that runs pong in each connecting terminal.

Each SSH connection gets its own match; both players share that
connection's keyboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pong/host_key

Examples:
  pong serve                           # Listen on :23234 with auto-generated key
  pong serve --ssh :2222               # Listen on port 2222
  pong serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (0 = use config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.Serve.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Serve.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Serve.IdleTimeout = flagIdleTimeout
	}

	logger, closeLog, err := newLogger("pong-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit
	logger.Debug("config loaded", "source", source)

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting pong SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
