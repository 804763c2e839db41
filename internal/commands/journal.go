package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/assetline-dev/assetline/internal/export"
	"github.com/assetline-dev/assetline/internal/parse"
)

func newJournalCommand() *cobra.Command {
	var workspace string
	var month string
	var out string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Export the close journal entries for one month as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(workspace, month, out)
		},
	}

	cmd.Flags().StringVar(&workspace, "workspace", ".", "workspace directory")
	cmd.Flags().StringVar(&month, "month", "", "month key, e.g. 2/25 (required)")
	_ = cmd.MarkFlagRequired("month")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")

	return cmd
}

func runJournal(workspace, month, out string) error {
	if _, _, ok := parse.MonthKeyParts(month); !ok {
		return fmt.Errorf("invalid month key %q (want M/YY)", month)
	}

	svc, st, _, err := openWorkspace(workspace)
	if err != nil {
		return err
	}
	defer st.Close()

	lines, err := svc.JournalEntries(month)
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
	return export.WriteJournal(w, lines)
}
