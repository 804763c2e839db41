package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetline-dev/assetline/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Corp", "sqlite"))

	for _, d := range []string{"logs", "import", "exports"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", cfg.Business.Name)
	assert.Equal(t, "sqlite", cfg.Store.Backend)

	_, err = os.Stat(filepath.Join(dir, cfg.Store.Path))
	assert.NoError(t, err, "sqlite database created")
}

func TestRunInit_MemoryBackendSkipsDatabase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Corp", "memory"))

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, cfg.Store.Path))
	assert.True(t, os.IsNotExist(err))
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()
	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "import", "report", "journal", "gl"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
