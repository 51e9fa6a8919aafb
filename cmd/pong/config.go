package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration pong would run with, as YAML.

Config search order:
  1. --config <path>
  2. ~/.pong/pong.yaml
  3. ./configs/pong.yaml
  4. embedded defaults

Examples:
  pong config
  pong config --config ./my-pong.yaml
  pong config --default > ~/.pong/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the commented default config")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
