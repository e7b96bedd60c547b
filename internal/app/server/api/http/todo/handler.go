package todo

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"todoapp/internal/domain/todo"
)

const (
	msgNotFound    = "Todo not found"
	msgUnavailable = "Database unavailable"
	msgDeleted     = "deleted"
)

type Handler struct {
	service    todo.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service todo.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	todos, err := h.service.List(ctx)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &listOutput{Body: todos}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*todoOutput, error) {
	created, err := h.service.Create(ctx, input.Body.Title, input.Body.Completed)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &todoOutput{Body: created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*todoOutput, error) {
	updated, err := h.service.UpdateCompletion(ctx, input.ID, input.Body.Completed)
	if err != nil {
		return nil, toHTTPError(err)
	}

	return &todoOutput{Body: updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, toHTTPError(err)
	}

	return &deleteOutput{
		Body: deleteResponse{Message: msgDeleted, ID: input.ID},
	}, nil
}

// toHTTPError - единственное место, где ошибки сервиса превращаются в HTTP статусы.
// Причина сбоя хранилища наружу не уходит.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, todo.ErrNotFound):
		return huma.Error404NotFound(msgNotFound)
	case errors.Is(err, todo.ErrInvalidTitle):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error503ServiceUnavailable(msgUnavailable)
	}
}
