package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidScope      = errors.New("invalid time scope")
)
