package todo

import (
	"todoapp/internal/domain/todo"
)

type listOutput struct {
	Body []todo.Todo
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Title     string `json:"title" minLength:"1" example:"buy milk" doc:"Название задачи"`
	Completed bool   `json:"completed,omitempty" default:"false" doc:"Признак выполнения, по умолчанию false"`
}

type todoOutput struct {
	Body *todo.Todo
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"ID задачи"`
	Body updateRequest
}

type updateRequest struct {
	Completed bool `json:"completed" doc:"Новое значение признака выполнения"`
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"ID задачи"`
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Message string `json:"message" example:"deleted"`
	ID      int64  `json:"id" example:"1"`
}
