package commands

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/books"
	"github.com/assetline-dev/assetline/internal/config"
	"github.com/assetline-dev/assetline/internal/importer"
	"github.com/assetline-dev/assetline/internal/store"
)

// openWorkspace loads a workspace's config, opens its configured store,
// and wires up a books service. The caller must Close the store.
func openWorkspace(dir string) (*books.Service, store.Store, *config.Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading workspace config: %w", err)
	}

	var st store.Store
	switch cfg.Store.Backend {
	case "memory":
		st = store.NewMemoryStore()
	case "sqlite", "":
		st, err = store.OpenSQLite(filepath.Join(absDir, cfg.Store.Path))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening store: %w", err)
		}
	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	svc := books.NewService(st, importer.DefaultRegistry(), cfg.Accounts)
	if cfg.Thresholds.BalanceEpsilon > 0 {
		svc = svc.WithEpsilon(decimal.NewFromFloat(cfg.Thresholds.BalanceEpsilon))
	}
	return svc, st, cfg, nil
}
