package postgres

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"todoapp/internal/app/server/config"
	"todoapp/internal/infrastructure/storage"
)

// Pool - стратегия с ограниченным пулом соединений на весь процесс
type Pool struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
	maxSize        int32
	closed         atomic.Bool
	stats          *tracker
	log            *slog.Logger
}

func NewPooled(ctx context.Context, cfg config.DB, log *slog.Logger) (*Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse database uri: %w", err)
	}
	pcfg.MinConns = cfg.MinSize
	pcfg.MaxConns = cfg.MaxSize
	pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	setStatementTimeout(pcfg.ConnConfig, cfg.StatementTimeout)

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, unavailable(fmt.Errorf("create pool: %w", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, unavailable(fmt.Errorf("ping database: %w", err))
	}

	log = log.With("component", "pg_pool")
	log.Info("database connection pool created",
		"min_size", cfg.MinSize,
		"max_size", cfg.MaxSize,
		"acquire_timeout", cfg.AcquireTimeout,
	)

	return &Pool{
		pool:           pool,
		acquireTimeout: cfg.AcquireTimeout,
		maxSize:        cfg.MaxSize,
		stats:          &tracker{},
		log:            log,
	}, nil
}

// Acquire ждет свободное соединение не дольше acquireTimeout
func (p *Pool) Acquire(ctx context.Context) (storage.Conn, error) {
	if p.closed.Load() {
		p.stats.failed.Add(1)
		return nil, unavailable(storage.ErrClosed)
	}

	waitCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()

	conn, err := p.pool.Acquire(waitCtx)
	if err != nil {
		p.stats.failed.Add(1)
		return nil, unavailable(fmt.Errorf("acquire from pool: %w", err))
	}

	return p.stats.lease(conn, conn.Release), nil
}

// Shutdown ждет возврата выданных соединений и закрывает пул
func (p *Pool) Shutdown() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	p.pool.Close()
	p.log.Info("database connection pool closed", "stats", p.Stats())
}

func (p *Pool) Stats() storage.Stats {
	s := p.stats.snapshot(config.StrategyPool, p.maxSize)
	if p.pool != nil {
		s.Idle = p.pool.Stat().IdleConns()
	}
	return s
}

func (p *Pool) Strategy() string {
	return config.StrategyPool
}
