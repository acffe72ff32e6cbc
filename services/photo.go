package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"

	"github.com/Karthick-Office/ecom/blob"
)

const (
	maxPhotoSize      = 5 * 1024 * 1024
	compressThreshold = 100 * 1024
	photoWidth        = 800
)

// Photo is an uploaded file as received from the HTTP layer.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// uploadPhoto stores a photo and returns its durable URL. Images above
// the compression threshold are resized and re-encoded as JPEG first.
func uploadPhoto(ctx context.Context, blobs blob.Storage, path string, photo Photo) (string, error) {
	if len(photo.Data) > maxPhotoSize {
		return "", fmt.Errorf("file size exceeds the 5MB limit")
	}

	data := photo.Data
	contentType := photo.ContentType
	if len(data) >= compressThreshold && (contentType == "image/jpeg" || contentType == "image/png") {
		var img image.Image
		var err error
		if contentType == "image/png" {
			img, err = png.Decode(bytes.NewReader(data))
		} else {
			img, err = jpeg.Decode(bytes.NewReader(data))
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode image: %v", err)
		}

		resized := resize.Resize(photoWidth, 0, img, resize.Lanczos3)
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 80}); err != nil {
			return "", fmt.Errorf("failed to encode resized image: %v", err)
		}
		data = buf.Bytes()
		contentType = "image/jpeg"
	}

	return blobs.Upload(ctx, path, bytes.NewReader(data), int64(len(data)), contentType)
}
