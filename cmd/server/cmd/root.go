package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"todoapp/internal/app/server/config"
	"todoapp/internal/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:   "todo-server",
	Short: "Todo API - CRUD сервис задач поверх PostgreSQL",
	Long: `Todo API хранит задачи в PostgreSQL и отдает их по HTTP.

Стратегия работы с соединениями задается DB_STRATEGY:
  pool   - ограниченный пул соединений на весь процесс
  direct - отдельное соединение на каждый запрос

Без подкоманды работает как serve.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log := logger.NewWithOptions(logger.Options{
		Env:   cfg.Env,
		Level: cfg.Logger.LogLevel,
		File:  cfg.Logger.File,
	}).With("service", cfg.ServiceName)

	return cfg, log, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}
