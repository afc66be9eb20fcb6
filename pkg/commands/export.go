package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of every entry.",
		Example: `
beyond export
beyond export --dir ~/backups
beyond export --stdout > backup.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			j, err := loadJournal(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			dir := eo.Dir
			if dir == "" {
				dir = j.Settings.ExportDir
			}
			e := export.Export{
				Service:   j.Service,
				Dir:       dir,
				Stdout:    eo.Stdout,
				Clipboard: eo.Clipboard,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddExportArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}
