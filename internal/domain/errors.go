package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrQuotaExhausted     = errors.New("question quota exhausted")
	ErrInvalidMessage     = errors.New("invalid message")
	ErrForbiddenSurface   = errors.New("surface not available on current tier")
)
