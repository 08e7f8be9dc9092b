// Package storage implements the document blob backend on top of
// gocloud.dev buckets, so local disk and GCS are interchangeable via the
// bucket URL.
package storage

import (
	"context"
	"io"

	"applyo/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Registered bucket schemes: file:// for development, gs:// in production.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket named by the configured URL.
func NewBlobStore(ctx context.Context, bucketURL string) (service.DocumentStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

// Put writes the document bytes under the given storage key.
func (s *blobStore) Put(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return errors.Wrap(err, "failed to write document bytes")
	}

	return errors.Wrap(w.Close(), "failed to finalize blob write")
}

// Get opens the document bytes for reading. The caller closes the reader.
func (s *blobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob reader")
	}

	return r, nil
}

// Delete removes the document bytes.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	return errors.Wrap(s.bucket.Delete(ctx, key), "failed to delete blob")
}

// Close releases the underlying bucket.
func (s *blobStore) Close() error {
	return s.bucket.Close()
}
