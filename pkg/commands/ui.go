package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	watch := true

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
beyond ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runUI(context.Background(), watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", true, "Reload when another process writes the journal.")

	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context, watch bool) error {
	j, err := loadJournal(nil)
	if err != nil {
		return err
	}
	i := ui.UI{
		Service:   j.Service,
		Formatter: j.Formatter,
		CellPx:    j.Settings.CellPx,
		ExportDir: j.Settings.ExportDir,
		Watch:     watch,
	}
	return i.Do(ctx)
}
