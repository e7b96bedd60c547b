// Package storage описывает контракт менеджера соединений с хранилищем.
//
// Репозитории не управляют соединениями сами: они получают соединение через
// Manager, выполняют одну единицу работы и возвращают его через Release.
// WithConn гарантирует возврат соединения на всех путях выхода.
package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrUnavailable - хранилище недоступно: нет связи, пул исчерпан или менеджер остановлен
	ErrUnavailable = errors.New("store unavailable")
	// ErrClosed - менеджер уже остановлен через Shutdown
	ErrClosed = errors.New("connection manager is shut down")
)

// Querier - набор операций, общий для *pgxpool.Conn и *pgx.Conn
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn - соединение, выданное в монопольное пользование одному запросу.
// Release идемпотентен: только первый вызов возвращает соединение.
type Conn interface {
	Querier
	Release()
}

type Stats struct {
	Strategy string `json:"strategy"`
	Acquired int64  `json:"acquired"`
	Released int64  `json:"released"`
	Failed   int64  `json:"failed"`
	InUse    int64  `json:"in_use"`
	MaxSize  int32  `json:"max_size"`
	Idle     int32  `json:"idle"`
}

// Manager выдает и забирает соединения. Реализации взаимозаменяемы.
type Manager interface {
	// Acquire ждет свободное соединение не дольше настроенного таймаута.
	// Ошибки всегда оборачивают ErrUnavailable.
	Acquire(ctx context.Context) (Conn, error)
	// Shutdown закрывает менеджер; после него Acquire сразу возвращает ErrUnavailable.
	Shutdown()
	Stats() Stats
	Strategy() string
}

// WithConn берет соединение, выполняет fn и возвращает соединение при любом исходе,
// включая панику в fn. fn получает контекст без отмены вызывающего: начатый
// запрос к базе доработает, даже если клиент отключился.
func WithConn(ctx context.Context, m Manager, fn func(ctx context.Context, q Querier) error) error {
	conn, err := m.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(context.WithoutCancel(ctx), conn)
}
