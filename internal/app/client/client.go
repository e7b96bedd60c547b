package client

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"todoapp/internal/app/client/config"
	"todoapp/internal/domain/todo"
)

type ctxKey struct{}

// App - клиент Todo API для командной строки
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("конфигурация не задана")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		config:     cfg,
		log:        log.With("component", "client"),
		httpClient: newHTTPClient(cfg, log),
	}, nil
}

// WithApp кладет клиент в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext достает клиент из контекста, nil если его нет
func FromContext(ctx context.Context) *App {
	app, _ := ctx.Value(ctxKey{}).(*App)
	return app
}

func (a *App) ServerURL() string {
	return a.config.ServerURL
}

// Health проверяет доступность сервера
func (a *App) Health(ctx context.Context) (*todo.Health, error) {
	return a.httpClient.health(ctx)
}

func (a *App) List(ctx context.Context) ([]todo.Todo, error) {
	return a.httpClient.list(ctx)
}

func (a *App) Create(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	return a.httpClient.create(ctx, title, completed)
}

// SetCompleted возвращает todo.ErrNotFound, если задачи нет
func (a *App) SetCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	return a.httpClient.setCompleted(ctx, id, completed)
}

// Delete не считает отсутствие задачи ошибкой
func (a *App) Delete(ctx context.Context, id int64) error {
	return a.httpClient.delete(ctx, id)
}
