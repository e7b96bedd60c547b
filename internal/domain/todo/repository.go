package todo

import (
	"context"
)

// Repository - доступ к таблице todos. Каждый метод берет и возвращает ровно одно соединение.
type Repository interface {
	// List возвращает записи от новых к старым
	List(ctx context.Context) ([]Todo, error)
	Create(ctx context.Context, title string, completed bool) (*Todo, error)
	// SetCompleted возвращает ErrNotFound, если записи с таким id нет
	SetCompleted(ctx context.Context, id int64, completed bool) (*Todo, error)
	// Delete не считает отсутствие записи ошибкой
	Delete(ctx context.Context, id int64) (bool, error)
}
