package todo

import (
	"errors"
)

var (
	ErrNotFound = errors.New("todo not found")
	// ErrStoreUnavailable скрывает конкретную причину сбоя хранилища от вызывающего
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidTitle     = errors.New("title must not be empty")
)
