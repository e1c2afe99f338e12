package document

import (
	"errors"
	"net/http"
)

// ErrInvalidReorder indicates a requested order that is not a permutation of
// the document's current block ids.
var ErrInvalidReorder = errors.New("invalid reorder")

// MapHTTPStatus maps document errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidReorder) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
