package openapi

import (
	"encoding/json"
	"net/http"
	"os"
)

// MarshalJSON renders the spec as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON writes the rendered spec to path.
func WriteJSON(spec *Spec, path string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ServeSpec returns a handler that serves pre-rendered spec bytes.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
