package storage

import (
	"context"
	"io"
)

// ObjectStore is the blob-store contract the back office depends on.
// The production implementation is S3-compatible; tests use MemoryStore.
type ObjectStore interface {
	// EnsureBucket creates the configured bucket (public-read) if it does
	// not exist yet.
	EnsureBucket(ctx context.Context) error

	// List returns the object keys under the given folder prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Upload writes an object and returns its public URL.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)

	// Remove deletes the given keys in one batched call. It returns the
	// keys that were deleted and the per-key failures; a failed key never
	// aborts the rest of the batch. Removing a missing key is not an error.
	Remove(ctx context.Context, keys []string) (deleted []string, errs []error)

	// PublicURL returns the public URL for a key without touching the store.
	PublicURL(key string) string
}
