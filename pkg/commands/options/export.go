package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Dir       string
	Stdout    bool
	Clipboard bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVar(&o.Dir, "dir", "",
		`Directory for the backup file, defaults to the export_dir setting.`)
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false,
		`Write the backup to stdout instead of a file.`)
	cmd.Flags().BoolVar(&o.Clipboard, "clipboard", false,
		`Copy the backup to the clipboard instead of a file.`)
}
