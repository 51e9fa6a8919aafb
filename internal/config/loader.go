package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadPong when no config file was found.
const SourceEmbedded = "embedded"

// LoadPong loads the pong configuration and reports where it came from.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadPong(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "pong.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg PongConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}
	return data, nil
}

// HomeDir returns ~/.pong, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}
