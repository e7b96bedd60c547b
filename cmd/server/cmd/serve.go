package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"todoapp/internal/app/server/api"
	"todoapp/internal/domain/todo"
	"todoapp/internal/infrastructure/migration"
	"todoapp/internal/infrastructure/storage/postgres"
)

const readHeaderTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	Long: `Поднимает менеджер соединений, проверяет доступность базы и начинает
принимать запросы. Если база недоступна при старте, сервер не запускается.

SIGINT/SIGTERM: сервер перестает принимать новые запросы, дожидается текущих
и только после этого закрывает соединения с базой.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.MigrateOnStart {
		if err := migration.NewMigration(cfg.DB, migration.DefaultEngine, log).Up(); err != nil {
			return fmt.Errorf("ошибка применения миграций: %w", err)
		}
	}

	initCtx, cancel := context.WithTimeout(ctx, cfg.DB.ConnectTimeout+cfg.DB.AcquireTimeout)
	manager, err := postgres.New(initCtx, cfg.DB, log)
	cancel()
	if err != nil {
		log.Error("database is unreachable, refusing to start", "strategy", cfg.DB.Strategy, "error", err)
		return fmt.Errorf("база данных недоступна: %w", err)
	}
	defer func() {
		manager.Shutdown()
		log.Info("connection manager stopped", "stats", manager.Stats())
	}()

	repo := postgres.NewTodoRepository(manager, log)
	service := todo.NewService(repo, cfg.ServiceName, log)

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(cfg, service, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server started", "address", cfg.Server.RunAddress, "strategy", manager.Strategy())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", cfg.Server.RunAddress, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
