package filestorage

import "context"

// Provider abstracts the blob backend behind the three operations the
// issuance flow needs. Swapping MinIO for another store means implementing
// these and touching nothing else.
type Provider interface {
	// Upload stores data under key and returns the stored object key.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Download returns the full object stored under key.
	Download(ctx context.Context, key string) ([]byte, error)
	// Delete removes the object under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// ResolveURL returns a time-limited URL for downloading the object.
	ResolveURL(ctx context.Context, key string) (string, error)
}
