package store

import (
	"context"
)

// Storage is the key/value backend of the document store.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// Write stores data under key, replacing any previous value.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves the data stored under key.
	// Returns os.ErrNotExist if the key does not exist.
	Read(ctx context.Context, key string) ([]byte, error)

	// List returns the keys starting with prefix, newest (alphabetically last) first.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
