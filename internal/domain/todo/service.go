package todo

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/exp/slog"
)

const healthStatus = "healthy"

type Servicer interface {
	Health() Health
	List(ctx context.Context) ([]Todo, error)
	Create(ctx context.Context, title string, completed bool) (*Todo, error)
	UpdateCompletion(ctx context.Context, id int64, completed bool) (*Todo, error)
	Delete(ctx context.Context, id int64) error
}

// Service defines the business logic for todo operations
type Service struct {
	repo        Repository
	serviceName string
	log         *slog.Logger
}

func NewService(repo Repository, serviceName string, log *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		serviceName: serviceName,
		log:         log.With("component", "todo_service"),
	}
}

// Health не обращается к хранилищу
func (s *Service) Health() Health {
	return Health{Status: healthStatus, Service: s.serviceName}
}

// List returns all todos, newest first
func (s *Service) List(ctx context.Context) ([]Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.unavailable("list", err)
	}
	if todos == nil {
		todos = []Todo{}
	}

	return todos, nil
}

// Create creates a new todo
func (s *Service) Create(ctx context.Context, title string, completed bool) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	t, err := s.repo.Create(ctx, title, completed)
	if err != nil {
		return nil, s.unavailable("create", err)
	}

	s.log.Info("todo created", "id", t.ID)
	return t, nil
}

// UpdateCompletion sets the completion flag of an existing todo
func (s *Service) UpdateCompletion(ctx context.Context, id int64, completed bool) (*Todo, error) {
	t, err := s.repo.SetCompleted(ctx, id, completed)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("todo not found", "id", id)
			return nil, ErrNotFound
		}
		return nil, s.unavailable("update", err)
	}

	return t, nil
}

// Delete is idempotent: deleting a missing todo succeeds
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.unavailable("delete", err)
	}

	s.log.Debug("todo delete", "id", id, "deleted", deleted)
	return nil
}

// unavailable логирует причину и отдает наружу только ErrStoreUnavailable
func (s *Service) unavailable(op string, err error) error {
	s.log.Error("store unavailable", "op", op, "error", err)
	return ErrStoreUnavailable
}
