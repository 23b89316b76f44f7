// Package apperrors содержит общие ошибки приложения.
package apperrors

import "errors"

var (
	// auth
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrMalformedCredentials = errors.New("malformed authorization header")
	ErrForbidden            = errors.New("forbidden")

	// users
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrSelfDeletion = errors.New("self deletion is not allowed")

	// budget
	ErrValidation = errors.New("validation error")
)
