package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for PostgreSQL driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"golang.org/x/exp/slog"

	"todoapp/internal/app/server/config"
	"todoapp/migrations"
)

// Migrator - интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Down() error
	Close() (error, error)
}

// MigrationEngine - фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(sourcePath, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    config.DB
	engine MigrationEngine
	log    *slog.Logger
}

func NewMigration(cfg config.DB, engine MigrationEngine, log *slog.Logger) *Migration {
	return &Migration{
		cfg:    cfg,
		engine: engine,
		log:    log.With("component", "migration"),
	}
}

// DefaultEngine читает миграции из каталога, если путь задан, иначе из встроенных файлов
func DefaultEngine(sourcePath, databaseURL string) (Migrator, error) {
	if sourcePath != "" {
		return migrate.New("file://"+sourcePath, databaseURL)
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

func (mg *Migration) Up() error {
	return mg.run("up", Migrator.Up)
}

func (mg *Migration) Down() error {
	return mg.run("down", Migrator.Down)
}

func (mg *Migration) run(direction string, step func(Migrator) error) (err error) {
	m, err := mg.engine(mg.cfg.Migrations, mg.cfg.URI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()

	if err := step(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("schema is up to date", "direction", direction)
			return nil
		}
		return fmt.Errorf("migration %s: %w", direction, err)
	}

	mg.log.Info("migrations applied", "direction", direction)
	return nil
}
