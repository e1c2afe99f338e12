package storage

import (
	"context"

	"github.com/JaimeStill/mail-designer/pkg/lifecycle"
)

// System defines blob storage operations keyed by slash-separated paths.
type System interface {
	// Store saves data at key, overwriting any existing object. Returns
	// ErrInvalidKey for empty or escaping keys and ErrTooLarge when data
	// exceeds the configured limit.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at key, or ErrNotFound.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the object at key. Deleting a missing key returns nil.
	Delete(ctx context.Context, key string) error

	// Validate reports whether key exists and is readable.
	Validate(ctx context.Context, key string) (bool, error)

	// List returns the keys stored under prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)

	// Start registers lifecycle hooks with the coordinator.
	// For filesystem storage, this creates the base directory.
	Start(lc *lifecycle.Coordinator) error
}
