package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}
	all := false

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the number of consecutive days with an entry.",
		Example: `
beyond streak
beyond streak --all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			j, err := loadJournal(on)
			if err != nil {
				return oo.HandleError(err)
			}
			s := streak.Streak{
				Service: j.Service,
				All:     all,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also show the longest streak ever recorded.")
	options.AddOutputArg(cmd, oo)
	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}
