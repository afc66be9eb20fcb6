package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	showID := false
	limit := 0
	since := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "history"},
		Short:   "List past entries, newest first.",
		Example: `
beyond list
beyond list --id -n 7
beyond list --since 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			j, err := loadJournal(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Service:   j.Service,
				Formatter: j.Formatter,
				ShowID:    showID,
				Limit:     limit,
				Since:     since,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show entry ids, needed for show and delete.")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only list the newest n entries.")
	cmd.Flags().StringVar(&since, "since", "", `Only list entries inside a window of days ending today, example: --since=2w or --since=10d.`)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
