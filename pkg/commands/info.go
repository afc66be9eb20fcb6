package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/beyond/pkg/runner/info"
	"tableflip.dev/beyond/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where entries are stored.",
		Example: `
beyond info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			settings, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(settings)
			if err != nil {
				return err
			}
			s := info.Info{
				Settings:    settings,
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
