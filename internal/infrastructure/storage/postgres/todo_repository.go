package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"todoapp/internal/domain/todo"
	"todoapp/internal/infrastructure/storage"
)

const todoColumns = `id, title, completed, created_at`

// TodoRepository выполняет один параметризованный запрос на одном соединении из менеджера
type TodoRepository struct {
	manager storage.Manager
	log     *slog.Logger
}

func NewTodoRepository(manager storage.Manager, log *slog.Logger) *TodoRepository {
	return &TodoRepository{
		manager: manager,
		log:     log.With("component", "todo_repository", "strategy", manager.Strategy()),
	}
}

func (r *TodoRepository) List(ctx context.Context) ([]todo.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		ORDER BY created_at DESC, id DESC`

	var todos []todo.Todo
	err := storage.WithConn(ctx, r.manager, func(ctx context.Context, q storage.Querier) error {
		rows, err := q.Query(ctx, query)
		if err != nil {
			return err
		}
		todos, err = pgx.CollectRows(rows, pgx.RowToStructByName[todo.Todo])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	const query = `
		INSERT INTO todos (title, completed)
		VALUES ($1, $2)
		RETURNING ` + todoColumns

	var created todo.Todo
	err := storage.WithConn(ctx, r.manager, func(ctx context.Context, q storage.Querier) error {
		rows, err := q.Query(ctx, query, title, completed)
		if err != nil {
			return err
		}
		created, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[todo.Todo])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	return &created, nil
}

func (r *TodoRepository) SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	const query = `
		UPDATE todos
		SET completed = $1
		WHERE id = $2
		RETURNING ` + todoColumns

	var updated todo.Todo
	err := storage.WithConn(ctx, r.manager, func(ctx context.Context, q storage.Querier) error {
		rows, err := q.Query(ctx, query, completed, id)
		if err != nil {
			return err
		}
		updated, err = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[todo.Todo])
		if errors.Is(err, pgx.ErrNoRows) {
			return todo.ErrNotFound
		}
		return err
	})
	if err != nil {
		if errors.Is(err, todo.ErrNotFound) {
			return nil, todo.ErrNotFound
		}
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}

	return &updated, nil
}

// Delete возвращает false без ошибки, если записи не было
func (r *TodoRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM todos WHERE id = $1`

	var deleted bool
	err := storage.WithConn(ctx, r.manager, func(ctx context.Context, q storage.Querier) error {
		tag, err := q.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		if !deleted {
			r.log.Debug("delete matched no rows", "id", id)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete todo %d: %w", id, err)
	}

	return deleted, nil
}
