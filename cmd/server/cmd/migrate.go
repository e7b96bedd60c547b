package cmd

import (
	"github.com/spf13/cobra"

	"todoapp/internal/infrastructure/migration"
)

// migrateCmd - родительская команда для управления схемой
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление схемой базы данных",
	Long: `Применяет или откатывает миграции таблицы todos.

По умолчанию используются миграции, встроенные в бинарник.
MIGRATIONS_PATH переключает на каталог с файлами миграций.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return migration.NewMigration(cfg.DB, migration.DefaultEngine, log).Up()
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить все миграции",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return migration.NewMigration(cfg.DB, migration.DefaultEngine, log).Down()
	},
}
