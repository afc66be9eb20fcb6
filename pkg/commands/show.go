package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full text of one entry.",
		Example: `
beyond show 1792395000000
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			ts, err := options.ParseTimestamp(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			j, err := loadJournal(nil)
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Service:   j.Service,
				Formatter: j.Formatter,
				Timestamp: ts,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
