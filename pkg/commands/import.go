package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/restore"
)

func addImport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge a JSON backup into the journal.",
		Long: `Merge a backup written by export. Entries already present, matched by
id, are skipped. Use - to read the backup from stdin.`,
		Example: `
beyond import beyond_backup_2026-10-19.json
cat backup.json | beyond import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			j, err := loadJournal(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			r := restore.Restore{
				Service: j.Service,
				Path:    args[0],
				In:      cmd.InOrStdin(),
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
