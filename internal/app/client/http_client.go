package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/exp/slog"

	"todoapp/internal/app/client/config"
	"todoapp/internal/domain/todo"
)

const userAgent = "todo-cli/1.0"

// ErrInvalidInput - сервер отклонил запрос на валидации (422)
var ErrInvalidInput = errors.New("invalid input")

// APIError - ответ сервера с кодом >= 400 в формате application/problem+json
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("ошибка сервера (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
}

// Unwrap позволяет проверять ответы через errors.Is с ошибками домена
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return todo.ErrNotFound
	case http.StatusServiceUnavailable:
		return todo.ErrStoreUnavailable
	case http.StatusUnprocessableEntity:
		return ErrInvalidInput
	}
	return nil
}

type httpClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	return &httpClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log:     log,
		baseURL: cfg.ServerURL,
	}
}

func (h *httpClient) health(ctx context.Context) (*todo.Health, error) {
	var out todo.Health
	if err := h.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) list(ctx context.Context) ([]todo.Todo, error) {
	var out []todo.Todo
	if err := h.do(ctx, http.MethodGet, "/api/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h *httpClient) create(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	body := map[string]any{"title": title, "completed": completed}

	var out todo.Todo
	if err := h.do(ctx, http.MethodPost, "/api/todos", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) setCompleted(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	body := map[string]any{"completed": completed}

	var out todo.Todo
	if err := h.do(ctx, http.MethodPatch, todoPath(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (h *httpClient) delete(ctx context.Context, id int64) error {
	return h.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

func todoPath(id int64) string {
	return "/api/todos/" + strconv.FormatInt(id, 10)
}

func (h *httpClient) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "body", string(data))

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var problem struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(data, &problem); err == nil {
			apiErr.Title, apiErr.Detail = problem.Title, problem.Detail
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
