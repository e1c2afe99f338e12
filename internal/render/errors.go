package render

import "errors"

// Domain errors for rendering.
var ErrUnknownPolicy = errors.New("unknown content policy")
