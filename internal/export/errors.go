package export

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/mail-designer/pkg/storage"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrTooLarge      = errors.New("export exceeds maximum size")
)

// MapHTTPStatus maps export errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
