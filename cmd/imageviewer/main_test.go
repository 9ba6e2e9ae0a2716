package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfavecli "github.com/urfave/cli/v3"

	"github.com/Kamisorara/ImageViewer/internal/app"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.Writer = &buf
	cmd.ErrWriter = &buf
	err := cmd.Run(context.Background(), append([]string{"imageviewer"}, args...))
	return buf.String(), err
}

func TestTreeCommandPrintsSample(t *testing.T) {
	out, err := runCommand(t, "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "root/\n+ 文档/\n")
	assert.Contains(t, out, "beach.jpg <https://picsum.photos/200/300>")
	assert.Contains(t, out, "problem(s):")
}

func TestTreeCommandStrict(t *testing.T) {
	_, err := runCommand(t, "tree", "--strict")
	assert.ErrorIs(t, err, app.ErrInvalidDataset)

	file := filepath.Join(t.TempDir(), "clean.yaml")
	require.NoError(t, os.WriteFile(file, []byte("files:\n  - notes/todo.md\n  - cat.png\n"), 0o600))

	out, err := runCommand(t, "--dataset", file, "tree", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "+ notes/\n")
	assert.Contains(t, out, "    todo.md\n")
	assert.NotContains(t, out, "problem")
}

func TestTreeCommandMissingDataset(t *testing.T) {
	_, err := runCommand(t, "--dataset", filepath.Join(t.TempDir(), "missing.yaml"), "tree")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCLIConfigOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("dataset: from-config.yaml\nmouse: true\n"), 0o600))

	cmd := newRootCommand()
	cmd.Writer = &bytes.Buffer{}
	cmd.Action = func(_ context.Context, c *urfavecli.Command) error {
		cfg, err := loadCLIConfig(c)
		require.NoError(t, err)
		assert.Equal(t, "from-flag.yaml", cfg.Dataset)
		assert.False(t, cfg.Mouse)
		return nil
	}
	require.NoError(t, cmd.Run(context.Background(), []string{
		"imageviewer", "--config-file", file, "--dataset", "from-flag.yaml", "--no-mouse",
	}))
}

func TestLoadCLIConfigMissingExplicitFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.Writer = &bytes.Buffer{}
	cmd.Action = func(_ context.Context, c *urfavecli.Command) error {
		_, err := loadCLIConfig(c)
		return err
	}
	err := cmd.Run(context.Background(), []string{
		"imageviewer", "--config-file", filepath.Join(t.TempDir(), "nope.yaml"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
