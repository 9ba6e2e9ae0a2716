package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamisorara/ImageViewer/internal/auth"
	"github.com/Kamisorara/ImageViewer/internal/motion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.WatchDataset)
	assert.Empty(t, cfg.Dataset)
	assert.Empty(t, cfg.DebugLog)
	assert.Equal(t, auth.DefaultCredentials(), cfg.Credentials())
	assert.Equal(t, 1500*time.Millisecond, cfg.Login.Delay)
	assert.Equal(t, 12, cfg.Indicator.Width)
	assert.Equal(t, motion.DefaultSpring(), cfg.Spring())
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := parseConfig([]byte(`
dataset: ~/tree.yaml
mouse: false
login:
  username: atlas
  password: kk
  delay: 250ms
indicator:
  width: 8
  damping: 0.9
`))
	require.NoError(t, err)

	assert.Equal(t, "~/tree.yaml", cfg.Dataset)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.WatchDataset, "unset keys keep defaults")
	assert.Equal(t, auth.Credentials{Username: "atlas", Password: "kk"}, cfg.Credentials())
	assert.Equal(t, 250*time.Millisecond, cfg.Login.Delay)
	assert.Equal(t, 8, cfg.Indicator.Width)
	assert.InDelta(t, 0.9, cfg.Indicator.Damping, 1e-9)
	assert.InDelta(t, 7.0, cfg.Indicator.Frequency, 1e-9)
}

func TestParseConfigNormalizes(t *testing.T) {
	cfg, err := parseConfig([]byte(`
login:
  username: " "
  delay: -1s
indicator:
  width: -3
  fps: 0
  frequency: -1
`))
	require.NoError(t, err)

	assert.Equal(t, auth.DefaultCredentials(), cfg.Credentials())
	assert.Equal(t, time.Duration(0), cfg.Login.Delay)
	assert.Equal(t, 12, cfg.Indicator.Width)
	assert.Equal(t, 60, cfg.Indicator.FPS)
	assert.InDelta(t, 7.0, cfg.Indicator.Frequency, 1e-9)
}

func TestParseConfigInvalidYAML(t *testing.T) {
	_, err := parseConfig([]byte("mouse: [\n"))
	assert.Error(t, err)
}

func TestLoadConfigFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, appName), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appName, "config.yml"), []byte("debug_log: /tmp/iv.log\n"), 0o600))

	cfg, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/iv.log", cfg.DebugLog)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mouse: false\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("IV_TEST_DIR", "data")

	got, err := ExpandPath("~/x.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x.yaml"), got)

	got, err = ExpandPath("/srv/$IV_TEST_DIR/tree.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/data/tree.yaml", got)
}
