package sessions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mail-designer/internal/blocks"
	"github.com/JaimeStill/mail-designer/internal/document"
	"github.com/JaimeStill/mail-designer/internal/export"
)

// Domain errors for session operations.
var (
	ErrNotFound      = errors.New("session not found")
	ErrBlockNotFound = errors.New("block not found")
	ErrLimitReached  = errors.New("session limit reached")
	ErrTooManyBlocks = errors.New("document block limit reached")
)

// MapHTTPStatus maps session errors, and the errors of the packages a
// session delegates to, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrTooManyBlocks):
		return http.StatusUnprocessableEntity
	}

	if status := blocks.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	if status := document.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return export.MapHTTPStatus(err)
}
