package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var completed bool

	cmd := &cobra.Command{
		Use:   "add <название>",
		Short: "Создать задачу",
		Long: `Создает задачу. Все аргументы склеиваются в название через пробел:

  todo add купить молоко`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd)
			if err != nil {
				return err
			}

			title := strings.Join(args, " ")
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("название задачи не может быть пустым")
			}

			created, err := app.Create(cmd.Context(), title, completed)
			if err != nil {
				return fmt.Errorf("ошибка создания задачи: %w", explain(err, 0))
			}

			if jsonOutput(cmd) {
				return printJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Создана задача %d: %s %s\n", created.ID, mark(*created), created.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&completed, "done", false, "сразу отметить выполненной")
	return cmd
}
