package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/assetline-dev/assetline/internal/export"
	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
)

func newReportCommand() *cobra.Command {
	var workspace string
	var kind string
	var assetType string
	var months string
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a reconciliation report with journal entries as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := splitMonthKeys(months)
			if err != nil {
				return err
			}
			return runReport(workspace, kind, assetType, keys, out)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&kind, "kind", "asset", "record kind (asset or accrual)")
	cmd.Flags().StringVar(&assetType, "type", string(model.AssetTypeComputerEquipment),
		"asset type (computer-equipment or furniture)")
	cmd.Flags().StringVar(&months, "months", "", "comma-separated month keys, e.g. 1/25,2/25 (required)")
	_ = cmd.MarkFlagRequired("months")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func splitMonthKeys(months string) ([]string, error) {
	var keys []string
	for _, key := range strings.Split(months, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, _, ok := parse.MonthKeyParts(key); !ok {
			return nil, fmt.Errorf("invalid month key %q (want M/YY)", key)
		}
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no month keys given")
	}
	parse.SortMonthKeys(keys)
	return keys, nil
}

func runReport(workspace, kind, assetType string, monthKeys []string, out string) error {
	svc, st, _, err := openWorkspace(workspace)
	if err != nil {
		return err
	}
	defer st.Close()

	var rep export.Report
	switch kind {
	case "asset":
		rep, err = svc.AssetReport(model.AssetType(assetType), monthKeys)
	case "accrual":
		rep, err = svc.AccrualReport(monthKeys)
	default:
		return fmt.Errorf("unknown report kind %q", kind)
	}
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return export.WriteReport(w, rep)
}
