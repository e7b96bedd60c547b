package postgres

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"todoapp/internal/app/server/config"
	"todoapp/internal/infrastructure/storage"
)

// New создает менеджер соединений по стратегии из конфигурации.
// Обе стратегии проверяют доступность базы при старте: если база недоступна,
// сервис не запускается.
func New(ctx context.Context, cfg config.DB, log *slog.Logger) (storage.Manager, error) {
	switch cfg.Strategy {
	case config.StrategyDirect:
		return NewDirect(ctx, cfg, log)
	case config.StrategyPool, "":
		return NewPooled(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown connection strategy %q", cfg.Strategy)
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
}

func setStatementTimeout(cc *pgx.ConnConfig, d time.Duration) {
	if d <= 0 {
		return
	}
	if cc.RuntimeParams == nil {
		cc.RuntimeParams = map[string]string{}
	}
	cc.RuntimeParams["statement_timeout"] = strconv.FormatInt(d.Milliseconds(), 10)
}

// tracker считает выдачи и возвраты соединений
type tracker struct {
	acquired atomic.Int64
	released atomic.Int64
	failed   atomic.Int64
	inUse    atomic.Int64
}

func (t *tracker) lease(q storage.Querier, release func()) storage.Conn {
	t.acquired.Add(1)
	t.inUse.Add(1)

	return &lease{Querier: q, release: release, t: t}
}

func (t *tracker) snapshot(strategy string, maxSize int32) storage.Stats {
	return storage.Stats{
		Strategy: strategy,
		Acquired: t.acquired.Load(),
		Released: t.released.Load(),
		Failed:   t.failed.Load(),
		InUse:    t.inUse.Load(),
		MaxSize:  maxSize,
	}
}

type lease struct {
	storage.Querier
	once    sync.Once
	release func()
	t       *tracker
}

func (l *lease) Release() {
	l.once.Do(func() {
		l.release()
		l.t.released.Add(1)
		l.t.inUse.Add(-1)
	})
}
