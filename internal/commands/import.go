package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/assetline-dev/assetline/internal/auditlog"
	"github.com/assetline-dev/assetline/internal/importer"
	"github.com/assetline-dev/assetline/internal/model"
)

// maxShownReasons caps how many rejection reasons the import command
// prints; the full set stays in the returned summary.
const maxShownReasons = 5

func newImportCommand() *cobra.Command {
	var workspace string
	var kind string
	var assetType string

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a CSV export of assets, accruals, or prepaids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(workspace, kind, assetType, args[0])
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&kind, "kind", "asset", "record kind (asset, accrual, prepaid)")
	cmd.Flags().StringVar(&assetType, "type", string(model.AssetTypeComputerEquipment),
		"asset type stamped on imported assets (computer-equipment or furniture)")

	return cmd
}

func runImport(workspace, kind, assetType, path string) error {
	svc, st, _, err := openWorkspace(workspace)
	if err != nil {
		return err
	}
	defer st.Close()

	reg := importer.NewRegistry()
	reg.Register(&importer.AssetParser{AssetType: model.AssetType(assetType)})
	reg.Register(&importer.AccrualParser{})
	reg.Register(&importer.PrepaidParser{})
	svc = svc.WithParsers(reg)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	summary, err := svc.Import(kind, string(data))
	if err != nil {
		return err
	}

	slog.Info("import complete",
		"kind", kind,
		"file", path,
		"accepted", summary.Accepted,
		"rejected", len(summary.Rejected),
		"skipped", summary.Skipped,
		"warnings", len(summary.Warnings))

	fmt.Printf("Imported %d %s record(s): %d rejected, %d skipped, %d warning(s)\n",
		summary.Accepted, kind, len(summary.Rejected), summary.Skipped, len(summary.Warnings))

	shown := 0
	for _, rej := range summary.Rejected {
		for _, reason := range rej.Reasons {
			if shown == maxShownReasons {
				fmt.Printf("  ... and more\n")
				break
			}
			fmt.Printf("  rejected: %s\n", reason)
			shown++
		}
		if shown == maxShownReasons {
			break
		}
	}
	for _, w := range summary.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}

	details := fmt.Sprintf("%s: %d accepted, %d rejected, %d skipped",
		path, summary.Accepted, len(summary.Rejected), summary.Skipped)
	return auditlog.Append(workspace, []auditlog.Entry{{
		Timestamp: time.Now(),
		Action:    "import",
		Kind:      kind,
		Details:   details,
	}})
}
