package service

import (
	"context"
	"io"
)

// DocumentStore abstracts the blob backend holding uploaded document bytes.
type DocumentStore interface {
	// Put writes the document bytes under the given storage key.
	Put(ctx context.Context, key string, contentType string, r io.Reader) error

	// Get opens the document bytes for reading. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the document bytes.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying bucket.
	Close() error
}
