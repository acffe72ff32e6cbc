// Package blob wraps the object storage used for profile photos and
// product media. Objects are addressed by hierarchical string paths
// (customer_photos/{id}, product_images/{productId}/{filename}, ...);
// every product's media lives under its own prefix so cleanup only
// touches that product's objects.
package blob

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("blob: object not found")

type Storage interface {
	// Upload stores the object and returns its durable public URL.
	Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error)
	// DownloadURL returns the durable public URL of an existing object,
	// or ErrObjectNotFound.
	DownloadURL(ctx context.Context, path string) (string, error)
	Delete(ctx context.Context, path string) error
	// List returns the paths of every object under prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
