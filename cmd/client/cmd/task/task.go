// Package task содержит команды работы с задачами.
package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"todoapp/internal/app/client"
	"todoapp/internal/domain/todo"
)

// JSONFlag - имя глобального флага вывода в JSON
const JSONFlag = "json"

var (
	doneMark    = color.New(color.FgGreen).Sprint("✓")
	pendingMark = color.New(color.FgRed).Sprint("✗")
)

// Commands возвращает новый набор команд, готовый к добавлению в корневую
func Commands() []*cobra.Command {
	return []*cobra.Command{
		newHealthCmd(),
		newListCmd(),
		newAddCmd(),
		newDoneCmd(),
		newUndoneCmd(),
		newRmCmd(),
	}
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return app, nil
}

func jsonOutput(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool(JSONFlag)
	return err == nil && v
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("некорректный ID задачи: %q", s)
	}
	return id, nil
}

func mark(t todo.Todo) string {
	if t.Completed {
		return doneMark
	}
	return pendingMark
}

// explain переводит ошибки сервера в понятные сообщения
func explain(err error, id int64) error {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return fmt.Errorf("задача %d не найдена", id)
	case errors.Is(err, todo.ErrStoreUnavailable):
		return errors.New("база данных сервера недоступна, повторите позже")
	default:
		return err
	}
}
