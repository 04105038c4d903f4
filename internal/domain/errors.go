package domain

import "errors"

var (
	ErrNoCurrentUser   = errors.New("no current user")
	ErrNotReady        = errors.New("identity or store not established")
	ErrEmptyText       = errors.New("prompt text is empty")
	ErrMissingPromptID = errors.New("prompt id is required")
	ErrPromptNotFound  = errors.New("prompt not found")
)
