package postgres

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/semaphore"

	"todoapp/internal/app/server/config"
	"todoapp/internal/infrastructure/storage"
)

type directConn interface {
	storage.Querier
	Close(ctx context.Context) error
}

type dialFunc func(ctx context.Context) (directConn, error)

// Direct - стратегия "соединение на запрос": физическое соединение открывается
// в Acquire и закрывается в Release. Число одновременных соединений ограничено
// maxSize, чтобы под нагрузкой не упереться в max_connections сервера.
type Direct struct {
	dial           dialFunc
	slots          *semaphore.Weighted
	maxSize        int32
	acquireTimeout time.Duration
	connectTimeout time.Duration
	closed         atomic.Bool
	stats          *tracker
	log            *slog.Logger
}

func NewDirect(ctx context.Context, cfg config.DB, log *slog.Logger) (*Direct, error) {
	cc, err := pgx.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}
	cc.ConnectTimeout = cfg.ConnectTimeout
	setStatementTimeout(cc, cfg.StatementTimeout)

	d := newDirect(func(ctx context.Context) (directConn, error) {
		conn, err := pgx.ConnectConfig(ctx, cc)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}, cfg, log)

	if err := d.verify(ctx); err != nil {
		return nil, err
	}

	d.log.Info("per-request connections enabled", "max_open", cfg.MaxSize)
	return d, nil
}

func newDirect(dial dialFunc, cfg config.DB, log *slog.Logger) *Direct {
	return &Direct{
		dial:           dial,
		slots:          semaphore.NewWeighted(int64(cfg.MaxSize)),
		maxSize:        cfg.MaxSize,
		acquireTimeout: cfg.AcquireTimeout,
		connectTimeout: cfg.ConnectTimeout,
		stats:          &tracker{},
		log:            log.With("component", "pg_direct"),
	}
}

// verify открывает и сразу закрывает одно соединение
func (d *Direct) verify(ctx context.Context) error {
	dialCtx, cancel := context.WithTimeout(ctx, d.connectTimeout)
	defer cancel()

	conn, err := d.dial(dialCtx)
	if err != nil {
		return unavailable(fmt.Errorf("connect: %w", err))
	}
	return conn.Close(dialCtx)
}

func (d *Direct) Acquire(ctx context.Context) (storage.Conn, error) {
	if d.closed.Load() {
		d.stats.failed.Add(1)
		return nil, unavailable(storage.ErrClosed)
	}

	waitCtx, cancel := context.WithTimeout(ctx, d.acquireTimeout)
	defer cancel()
	if err := d.slots.Acquire(waitCtx, 1); err != nil {
		d.stats.failed.Add(1)
		return nil, unavailable(fmt.Errorf("wait for connection slot: %w", err))
	}

	dialCtx, cancelDial := context.WithTimeout(ctx, d.connectTimeout)
	defer cancelDial()

	conn, err := d.dial(dialCtx)
	if err != nil {
		d.slots.Release(1)
		d.stats.failed.Add(1)
		return nil, unavailable(fmt.Errorf("connect: %w", err))
	}

	return d.stats.lease(conn, func() { d.close(conn) }), nil
}

func (d *Direct) close(conn directConn) {
	defer d.slots.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), d.connectTimeout)
	defer cancel()
	if err := conn.Close(ctx); err != nil {
		d.log.Warn("failed to close connection", "error", err)
	}
}

// Shutdown запрещает новые Acquire и ждет закрытия уже выданных соединений
// не дольше acquireTimeout.
func (d *Direct) Shutdown() {
	if !d.closed.CompareAndSwap(false, true) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.acquireTimeout)
	defer cancel()
	if err := d.slots.Acquire(ctx, int64(d.maxSize)); err != nil {
		d.log.Warn("connections still open at shutdown", "in_use", d.stats.inUse.Load())
		return
	}
	d.slots.Release(int64(d.maxSize))
	d.log.Info("per-request connections drained", "stats", d.Stats())
}

func (d *Direct) Stats() storage.Stats {
	return d.stats.snapshot(config.StrategyDirect, d.maxSize)
}

func (d *Direct) Strategy() string {
	return config.StrategyDirect
}
