package health

import "todoapp/internal/domain/todo"

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body todo.Health
}
