package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/commands/options"
	"tableflip.dev/beyond/pkg/entry"
	"tableflip.dev/beyond/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete one entry.",
		Example: `
beyond delete 1792395000000
beyond delete --yes 1792395000000
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
			r := remove.Remove{
				Service:   j.Service,
				Formatter: j.Formatter,
				Timestamp: ts,
				JSON:      oo.JSON,
				Out:       cmd.OutOrStdout(),
			}
			if !co.Yes {
				r.Confirm = confirmDelete(j.Formatter)
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}

func confirmDelete(f entry.Formatter) func(entry.Entry) (bool, error) {
	return func(e entry.Entry) (bool, error) {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete the entry of %s (%s)", f.Label(e), entry.Preview(e.Text, 40)),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			if errors.Is(err, promptui.ErrAbort) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}
}
