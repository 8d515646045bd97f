package utils

import (
	"errors"
	"net/http"
)

// Error taxonomy surfaced to callers. Store-level detail is logged
// internally; clients only ever see the class plus a generic message.
var (
	ErrUnauthenticated  = errors.New("user not authenticated")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StatusFor maps a taxonomy error to its HTTP status. Unknown errors map
// to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
