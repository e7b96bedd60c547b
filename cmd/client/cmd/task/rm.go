package task

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Удалить задачу",
		Long:    `Удаляет задачу. Удаление несуществующей задачи не считается ошибкой.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			if err := app.Delete(cmd.Context(), id); err != nil {
				return explain(err, id)
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]any{"message": "deleted", "id": id})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Задача %d удалена\n", id)
			return nil
		},
	}
}
