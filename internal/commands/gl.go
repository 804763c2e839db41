package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
)

func newGLCommand() *cobra.Command {
	glCmd := &cobra.Command{
		Use:   "gl",
		Short: "Manage general-ledger reference balances",
	}
	glCmd.AddCommand(newGLSetCommand())
	return glCmd
}

func newGLSetCommand() *cobra.Command {
	var workspace string
	var assetType string

	cmd := &cobra.Command{
		Use:   "set <month> <amount>",
		Short: "Record the GL balance for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGLSet(workspace, assetType, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&assetType, "type", string(model.AssetTypeComputerEquipment),
		"asset type (computer-equipment or furniture)")

	return cmd
}

func runGLSet(workspace, assetType, month, amount string) error {
	if _, _, ok := parse.MonthKeyParts(month); !ok {
		return fmt.Errorf("invalid month key %q (want M/YY)", month)
	}

	svc, st, _, err := openWorkspace(workspace)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := svc.SetGLBalance(model.AssetType(assetType), month, parse.Amount(amount)); err != nil {
		return err
	}
	fmt.Printf("Set %s GL balance for %s to %s\n", assetType, month, parse.Amount(amount).StringFixed(2))
	return nil
}
