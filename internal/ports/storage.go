package ports

import "context"

// ObjectStore is the low-level client for the pipeline's bucket.
type ObjectStore interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Upload(ctx context.Context, localPath, key string) error
	Download(ctx context.Context, key, localPath string) error
	Put(ctx context.Context, key string, body []byte, contentType string) error
}
