package todo

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"todoapp/internal/domain/todo"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Health() todo.Health {
	args := m.Called()
	return args.Get(0).(todo.Health)
}

func (m *MockService) List(ctx context.Context) ([]todo.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.Todo), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, title string, completed bool) (*todo.Todo, error) {
	args := m.Called(ctx, title, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockService) UpdateCompletion(ctx context.Context, id int64, completed bool) (*todo.Todo, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestHandler(svc todo.Servicer) *Handler {
	return NewHandler(svc, slog.Default(), nil)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected huma status error, got %v", err)
	assert.Equal(t, status, se.GetStatus())
}

func TestHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		todos := []todo.Todo{{ID: 2, Title: "b"}, {ID: 1, Title: "a"}}
		svc.On("List", mock.Anything).Return(todos, nil)

		out, err := h.list(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, todos, out.Body)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		svc.On("List", mock.Anything).Return(nil, todo.ErrStoreUnavailable)

		out, err := h.list(context.Background(), nil)

		assert.Nil(t, out)
		assertStatus(t, err, http.StatusServiceUnavailable)
		assert.Contains(t, err.Error(), "Database unavailable")
	})
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success_DefaultIncomplete", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		created := &todo.Todo{ID: 1, Title: "buy milk", CreatedAt: time.Now()}
		svc.On("Create", mock.Anything, "buy milk", false).Return(created, nil)

		input := &createInput{}
		input.Body.Title = "buy milk"
		out, err := h.create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, created, out.Body)
		svc.AssertExpectations(t)
	})

	t.Run("Error_InvalidTitle", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		svc.On("Create", mock.Anything, "  ", false).Return(nil, todo.ErrInvalidTitle)

		input := &createInput{}
		input.Body.Title = "  "
		_, err := h.create(context.Background(), input)

		assertStatus(t, err, http.StatusUnprocessableEntity)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		svc.On("Create", mock.Anything, "buy milk", true).Return(nil, todo.ErrStoreUnavailable)

		input := &createInput{}
		input.Body.Title = "buy milk"
		input.Body.Completed = true
		_, err := h.create(context.Background(), input)

		assertStatus(t, err, http.StatusServiceUnavailable)
	})
}

func TestHandler_Update(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "Success"},
		{name: "Error_NotFound", serviceErr: todo.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "Error_StoreUnavailable", serviceErr: todo.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "Error_Unexpected", serviceErr: errors.New("pq: terminating connection"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := newTestHandler(svc)
			if tt.serviceErr != nil {
				svc.On("UpdateCompletion", mock.Anything, int64(1), true).Return(nil, tt.serviceErr)
			} else {
				svc.On("UpdateCompletion", mock.Anything, int64(1), true).
					Return(&todo.Todo{ID: 1, Title: "buy milk", Completed: true}, nil)
			}

			input := &updateInput{ID: 1}
			input.Body.Completed = true
			out, err := h.update(context.Background(), input)

			if tt.wantStatus != 0 {
				assert.Nil(t, out)
				assertStatus(t, err, tt.wantStatus)
				assert.NotContains(t, err.Error(), "pq:")
				return
			}
			require.NoError(t, err)
			assert.True(t, out.Body.Completed)
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		svc.On("Delete", mock.Anything, int64(1)).Return(nil)

		out, err := h.delete(context.Background(), &deleteInput{ID: 1})

		require.NoError(t, err)
		assert.Equal(t, deleteResponse{Message: "deleted", ID: 1}, out.Body)
	})

	t.Run("Error_StoreUnavailable", func(t *testing.T) {
		svc := new(MockService)
		h := newTestHandler(svc)
		svc.On("Delete", mock.Anything, int64(1)).Return(todo.ErrStoreUnavailable)

		_, err := h.delete(context.Background(), &deleteInput{ID: 1})

		assertStatus(t, err, http.StatusServiceUnavailable)
	})
}
