package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("Acme Corp")
	cfg.Store.Backend = "memory"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", loaded.Business.Name)
	assert.Equal(t, "memory", loaded.Store.Backend)
	assert.Equal(t, cfg.Accounts, loaded.Accounts)
	assert.Equal(t, 0.01, loaded.Thresholds.BalanceEpsilon)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default("Acme Corp")
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "assetline.db", cfg.Store.Path)
	assert.NotEmpty(t, cfg.Accounts.DepreciationExpense)
}
