package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-list",
		Method:      http.MethodGet,
		Path:        "/api/todos",
		Summary:     "Список задач",
		Description: "Возвращает все задачи, новые первыми.",
		Tags:        []string{"todos"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "todos-create",
		Method:        http.MethodPost,
		Path:          "/api/todos",
		Summary:       "Создать задачу",
		Tags:          []string{"todos"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-update",
		Method:      http.MethodPatch,
		Path:        "/api/todos/{id}",
		Summary:     "Отметить задачу выполненной или нет",
		Tags:        []string{"todos"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/todos/{id}",
		Summary:     "Удалить задачу",
		Description: "Идемпотентно: удаление отсутствующей задачи тоже возвращает 200.",
		Tags:        []string{"todos"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
