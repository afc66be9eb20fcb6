package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to an MCP client over stdio.",
		Long: `Start a Model Context Protocol server on stdin/stdout. Clients get tools to
write today's entry, list, search, read and delete entries, read the streak and
fetch the backup document.`,
		Example: `
beyond mcp
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal(nil)
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Service:   j.Service,
				Formatter: j.Formatter,
				Name:      "beyond",
				Version:   version,
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
