package task

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoneCmd() *cobra.Command {
	return newCompletionCmd("done", "Отметить задачу выполненной", true)
}

func newUndoneCmd() *cobra.Command {
	return newCompletionCmd("undone", "Снять отметку о выполнении", false)
}

func newCompletionCmd(use, short string, completed bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			updated, err := app.SetCompleted(cmd.Context(), id, completed)
			if err != nil {
				return explain(err, id)
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", mark(*updated), updated.ID, updated.Title)
			return nil
		},
	}
}
