package commands

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "beyond",
		Short: base.Wrap80("One short journal entry a day, and a streak to keep."),
		Long: base.Wrap80("beyond keeps a daily journal: write one entry per day, " +
			"watch the streak of consecutive days grow, browse and prune the history, " +
			"and export a JSON backup. Run without a subcommand on a terminal to open the UI."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return cmd.Help()
			}
			cmd.SilenceUsage = true
			return runUI(context.Background(), true)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addStreak(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addDemo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
