package persist

import "context"

// Storage is a durable key/value backend for persisted state slices.
// Values are JSON-encoded slice snapshots, one key per slice.
type Storage interface {
	// Get returns the stored value for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put writes value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
