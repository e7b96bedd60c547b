package task

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"todoapp/internal/domain/todo"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Список задач",
		Long:    `Показывает все задачи, новые первыми.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			todos, err := app.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("ошибка получения списка задач: %w", explain(err, 0))
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), todos)
			}
			return printTable(cmd.OutOrStdout(), todos)
		},
	}
}

func printTable(out io.Writer, todos []todo.Todo) error {
	if len(todos) == 0 {
		fmt.Fprintln(out, "Задач нет")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t\tНазвание\tСоздано\n")
	for _, t := range todos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, mark(t), t.Title, t.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nВсего задач: %d\n", len(todos))
	return nil
}
