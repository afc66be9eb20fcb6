package commands

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/entry"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(beyond completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(beyond completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletionV2(os.Stdout, true)
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers entry ids, newest first, described by their label.
func entryCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	j, err := loadJournal(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	history, err := j.Service.History(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completionsFor(history, j.Formatter), cobra.ShellCompDirectiveNoFileComp
}

func completionsFor(history []entry.Entry, f entry.Formatter) []string {
	out := make([]string, 0, len(history))
	for _, e := range history {
		out = append(out, strconv.FormatInt(e.Timestamp, 10)+"\t"+f.Label(e)+": "+entry.Preview(e.Text, 30))
	}
	return out
}
