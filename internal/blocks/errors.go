package blocks

import (
	"errors"
	"net/http"
)

// Domain errors for block construction and patching.
var (
	ErrUnknownVariant    = errors.New("unknown block variant")
	ErrUnknownProperty   = errors.New("unknown style property")
	ErrInapplicableField = errors.New("field not applicable to block variant")
)

// MapHTTPStatus maps block errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrUnknownVariant) ||
		errors.Is(err, ErrUnknownProperty) ||
		errors.Is(err, ErrInapplicableField) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
