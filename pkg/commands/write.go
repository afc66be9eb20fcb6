package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "write <text...>",
		Aliases: []string{"w"},
		Short:   "Write today's entry.",
		Example: `
beyond write walked to the lake and back
beyond write --on 2026-10-18 forgot to write yesterday
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			oo.Out = cmd.OutOrStdout()
			j, err := loadJournal(on)
			if err != nil {
				return oo.HandleError(err)
			}
			w := write.Write{
				Service:   j.Service,
				Formatter: j.Formatter,
				Text:      strings.Join(args, " "),
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			return oo.HandleError(w.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddOnArgs(cmd, on)

	topLevel.AddCommand(cmd)
}
