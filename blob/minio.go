package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

// Minio serves blobs from one S3-compatible bucket fronted by a public
// host (CDN or the endpoint itself), so download URLs are plain
// https://<host>/<object> links that stay valid without signing.
type Minio struct {
	client     *minio.Client
	bucket     string
	publicHost string
}

func NewMinio(client *minio.Client, bucket, publicHost string) *Minio {
	return &Minio{client: client, bucket: bucket, publicHost: publicHost}
}

func (s *Minio) url(path string) string {
	return fmt.Sprintf("https://%s/%s", s.publicHost, path)
}

func (s *Minio) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, path, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return s.url(path), nil
}

func (s *Minio) DownloadURL(ctx context.Context, path string) (string, error) {
	_, err := s.client.StatObject(ctx, s.bucket, path, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return "", ErrObjectNotFound
		}
		return "", err
	}
	return s.url(path), nil
}

func (s *Minio) Delete(ctx context.Context, path string) error {
	return s.client.RemoveObject(ctx, s.bucket, path, minio.RemoveObjectOptions{})
}

func (s *Minio) List(ctx context.Context, prefix string) ([]string, error) {
	var paths []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		paths = append(paths, obj.Key)
	}
	return paths, nil
}
