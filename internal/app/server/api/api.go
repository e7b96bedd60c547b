// GET    /health          # Проверка живости, база не трогается
// GET    /api/todos       # Список задач, новые первыми
// POST   /api/todos       # Создать задачу
// PATCH  /api/todos/{id}  # Отметить выполнение
// DELETE /api/todos/{id}  # Удалить задачу (идемпотентно)

package api

import (
	healthAPI "todoapp/internal/app/server/api/http/health"
	"todoapp/internal/app/server/api/http/middleware"
	"todoapp/internal/app/server/api/http/middleware/cors"
	"todoapp/internal/app/server/api/http/middleware/logger"
	todoAPI "todoapp/internal/app/server/api/http/todo"
	"todoapp/internal/app/server/config"
	"todoapp/internal/domain/todo"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

const (
	apiTitle   = "K8s Security Lab - Todo API"
	apiVersion = "1.0.0"
)

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(cfg *config.Config, service todo.Servicer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(chimw.Recoverer)
	mux.Use(cors.Handler(cfg.Server.AllowedOrigins))

	Register(humachi.New(mux, humaConfig()), service, log)

	return mux
}

// Register вешает все операции на переданный huma.API
func Register(api huma.API, service todo.Servicer, log *slog.Logger) {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthAPI.NewHandler(service, log, middlewares.GetAllAndClear()).SetupRoutes(api)

	middlewares.Add(loggerMW.Middleware())
	todoAPI.NewHandler(service, log, middlewares.GetAllAndClear()).SetupRoutes(api)
}

func humaConfig() huma.Config {
	humaCfg := huma.DefaultConfig(apiTitle, apiVersion)
	// ответы отдаем без $schema, клиенты ждут ровно поля записи
	humaCfg.CreateHooks = nil
	return humaCfg
}
