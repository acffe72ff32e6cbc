package services

import (
	"bytes"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

type ProductService struct {
	store store.Store
	blobs blob.Storage
}

func NewProductService(st store.Store, blobs blob.Storage) *ProductService {
	return &ProductService{store: st, blobs: blobs}
}

func productPath(productID string) string {
	return "products/" + productID
}

func productImagePrefix(productID string) string {
	return "product_images/" + productID + "/"
}

func productVideoPath(productID string) string {
	return "product_videos/" + productID
}

// AddProduct generates the product id, uploads the images in input
// order, the optional video, and writes the complete record.
func (s *ProductService) AddProduct(ctx context.Context, product models.Product, images []Photo, video *Photo) (string, error) {
	productID := GenerateUniqueID()

	imageURLs := make([]string, 0, len(images))
	for _, img := range images {
		url, err := uploadPhoto(ctx, s.blobs, productImagePrefix(productID)+img.Name, img)
		if err != nil {
			log.Printf("Error adding product: %v", err)
			return "", err
		}
		imageURLs = append(imageURLs, url)
	}
	product.Images = imageURLs
	product.ProductID = productID

	if video != nil {
		url, err := s.blobs.Upload(ctx, productVideoPath(productID),
			bytes.NewReader(video.Data), int64(len(video.Data)), video.ContentType)
		if err != nil {
			log.Printf("Error adding product: %v", err)
			return "", err
		}
		product.Video = url
	}

	if err := s.store.Set(ctx, productPath(productID), product); err != nil {
		log.Printf("Error adding product: %v", err)
		return "", err
	}
	return productID, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID string, fields bson.M) error {
	return s.store.Merge(ctx, productPath(productID), fields)
}

// GetProductDetails returns the stored record, or nil when none
// exists; callers treat nil as not found.
func (s *ProductService) GetProductDetails(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	found, err := s.store.Get(ctx, productPath(productID), &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &product, nil
}

// DeleteProduct removes the record, then cleans up the product's own
// media prefix. Blob cleanup is best-effort: a failed or missing object
// never fails the deletion.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.store.Delete(ctx, productPath(productID)); err != nil {
		return err
	}

	paths, err := s.blobs.List(ctx, productImagePrefix(productID))
	if err != nil {
		log.Printf("Error listing images for product %s: %v", productID, err)
	}
	for _, path := range paths {
		if err := s.blobs.Delete(ctx, path); err != nil {
			log.Printf("Error deleting image %s: %v", path, err)
		}
	}

	if err := s.blobs.Delete(ctx, productVideoPath(productID)); err != nil && !errors.Is(err, blob.ErrObjectNotFound) {
		log.Printf("Error deleting video for product %s: %v", productID, err)
	}
	return nil
}

// GetAllProducts reads the whole collection and reshapes the id-keyed
// documents into a list, with each document's key injected back as its
// productId. Order follows the store's iteration order.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	docs, err := s.store.List(ctx, "products")
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(docs))
	for key, raw := range docs {
		var product models.Product
		if err := bson.Unmarshal(raw, &product); err != nil {
			return nil, err
		}
		product.ProductID = key
		products = append(products, product)
	}
	return products, nil
}
