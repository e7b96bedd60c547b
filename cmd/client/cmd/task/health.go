package task

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Проверить доступность сервера",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			h, err := app.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("сервер %s недоступен: %w", app.ServerURL(), err)
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), h)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", doneMark, h.Service, h.Status)
			return nil
		},
	}
}
