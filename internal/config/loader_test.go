package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadPongEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, DefaultPongConfig(), cfg)
}

func TestLoadPongCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "fast.yaml")
	writeFile(t, path, "physics:\n  ball_speed: 350\nterminal:\n  key_hold: 90ms\n")

	cfg, source, err := LoadPong(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Equal(t, 350.0, cfg.Physics.BallSpeed)
	assert.Equal(t, 90*time.Millisecond, cfg.Terminal.KeyHold)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, 500.0, cfg.Physics.PaddleSpeed)
	assert.Equal(t, "Pong", cfg.Window.Title)
}

func TestLoadPongCustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	_, _, err := LoadPong(filepath.Join(work, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "physics: [not, a, map]\n")
	_, _, err = LoadPong(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	invalid := filepath.Join(work, "invalid.yaml")
	writeFile(t, invalid, "loop:\n  tick_rate: 0\n")
	_, _, err = LoadPong(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop.tick_rate")
}

func TestLoadPongSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", "pong.yaml"), "window:\n  title: Local\n")

	cfg, source, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "pong.yaml"), source)
	assert.Equal(t, "Local", cfg.Window.Title)

	// The user config wins over the local one.
	userPath := filepath.Join(home, ".pong", "pong.yaml")
	writeFile(t, userPath, "window:\n  title: User\n")

	cfg, source, err = LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, userPath, source)
	assert.Equal(t, "User", cfg.Window.Title)
}

func TestLoadPongSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".pong", "pong.yaml"), "ball:\n  size: -1\n")

	_, source, err := LoadPong("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, source)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Window.Title = "Round Trip"
	cfg.Serve.IdleTimeout = 90 * time.Second

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "idle_timeout: 1m30s")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
