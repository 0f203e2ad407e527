// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"

	"shoplite/internal/store"
)

// StatusFromError maps the store error taxonomy onto HTTP status codes.
// The mapping is deterministic: unknown errors are storage failures.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
