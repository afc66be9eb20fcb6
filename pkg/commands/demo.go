package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/runner/demo"
)

func addDemo(topLevel *cobra.Command) {
	days := 21
	skip := 5

	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Fill the journal with sample entries for the past days.",
		Hidden: true,
		Example: `
beyond demo
beyond demo --days 60 --skip 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			j, err := loadJournal(nil)
			if err != nil {
				return err
			}
			d := demo.Demo{
				Persistence: j.Service.Persistence,
				Location:    j.Service.Location,
				Days:        days,
				Skip:        skip,
				Out:         cmd.OutOrStdout(),
			}
			return d.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&days, "days", days, "How many days back to generate.")
	cmd.Flags().IntVar(&skip, "skip", skip, "Leave every n-th day empty, 0 for none.")

	topLevel.AddCommand(cmd)
}
