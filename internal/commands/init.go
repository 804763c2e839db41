package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/assetline-dev/assetline/internal/config"
	"github.com/assetline-dev/assetline/internal/store"
)

func newInitCommand() *cobra.Command {
	var name string
	var backend string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new assetline workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, backend)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&backend, "store", "sqlite", "document store backend (memory or sqlite)")

	return cmd
}

func runInit(dir, name, backend string) error {
	for _, d := range []string{"logs", "import", "exports"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	cfg.Store.Backend = backend
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if backend == "sqlite" {
		st, err := store.OpenSQLite(filepath.Join(dir, cfg.Store.Path))
		if err != nil {
			return fmt.Errorf("creating database: %w", err)
		}
		if err := st.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
	}

	fmt.Printf("Initialized assetline workspace at %s\n", dir)
	return nil
}
