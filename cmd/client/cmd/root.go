// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todoapp/cmd/client/cmd/task"
	"todoapp/internal/app/client"
	"todoapp/internal/app/client/config"
	"todoapp/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - клиент Todo API",
	Long: `todo работает с сервером Todo API: показывает список задач,
создает новые, отмечает выполнение и удаляет.

Адрес сервера берется из флага --server, переменной SERVER_URL
или файла ~/.todo/config.yaml.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Флаги командной строки важнее конфигурации
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if debug {
		cfg.LogLevel = "debug"
	}

	log := logger.NewWithOptions(logger.Options{Env: cfg.Env, Level: cfg.LogLevel})

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации клиента: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().Bool(task.JSONFlag, false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL сервера Todo API")

	rootCmd.AddCommand(task.Commands()...)
}
