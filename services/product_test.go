package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

func newProductFixture() (*ProductService, *store.Memory, *blob.Memory) {
	st := store.NewMemory()
	blobs := blob.NewMemory()
	return NewProductService(st, blobs), st, blobs
}

func testProduct(name string) models.Product {
	return models.Product{
		Name:     name,
		Category: "grocery",
		Price:    49.5,
		Stock:    10,
	}
}

func TestAddProduct(t *testing.T) {
	svc, st, blobs := newProductFixture()
	ctx := context.Background()

	images := []Photo{
		{Name: "front.jpg", ContentType: "image/jpeg", Data: []byte("front")},
		{Name: "back.jpg", ContentType: "image/jpeg", Data: []byte("back")},
	}
	video := &Photo{Name: "demo.mp4", ContentType: "video/mp4", Data: []byte("mp4")}

	productID, err := svc.AddProduct(ctx, testProduct("Rice 5kg"), images, video)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if productID == "" {
		t.Fatal("AddProduct returned empty id")
	}

	if !blobs.Exists("product_images/" + productID + "/front.jpg") {
		t.Error("first image not uploaded under the product's prefix")
	}
	if !blobs.Exists("product_images/" + productID + "/back.jpg") {
		t.Error("second image not uploaded under the product's prefix")
	}
	if !blobs.Exists("product_videos/" + productID) {
		t.Error("video not uploaded")
	}

	var stored models.Product
	found, err := st.Get(ctx, "products/"+productID, &stored)
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.Name != "Rice 5kg" {
		t.Errorf("Name = %q", stored.Name)
	}
	if len(stored.Images) != 2 {
		t.Fatalf("Images has %d entries, want 2", len(stored.Images))
	}
	// Image URLs keep input order.
	if !strings.HasSuffix(stored.Images[0], "/front.jpg") || !strings.HasSuffix(stored.Images[1], "/back.jpg") {
		t.Errorf("Images order = %v", stored.Images)
	}
	if stored.Video == "" {
		t.Error("Video URL not set")
	}
}

func TestAddProductWithoutVideo(t *testing.T) {
	svc, st, blobs := newProductFixture()
	ctx := context.Background()

	productID, err := svc.AddProduct(ctx, testProduct("Sugar 1kg"), nil, nil)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if blobs.Len() != 0 {
		t.Errorf("uploaded %d blobs, want 0", blobs.Len())
	}

	var stored models.Product
	if _, err := st.Get(ctx, "products/"+productID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Video != "" {
		t.Errorf("Video = %q, want empty", stored.Video)
	}
	if len(stored.Images) != 0 {
		t.Errorf("Images = %v, want empty", stored.Images)
	}
}

func TestUpdateProductMergesFields(t *testing.T) {
	svc, st, _ := newProductFixture()
	ctx := context.Background()

	productID, err := svc.AddProduct(ctx, testProduct("Salt"), nil, nil)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	if err := svc.UpdateProduct(ctx, productID, bson.M{"price": 20.0, "stock": 3}); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	var stored models.Product
	if _, err := st.Get(ctx, "products/"+productID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Price != 20.0 || stored.Stock != 3 {
		t.Errorf("Price=%v Stock=%v after merge", stored.Price, stored.Stock)
	}
	if stored.Name != "Salt" {
		t.Errorf("Name = %q, untouched field was lost", stored.Name)
	}
}

func TestGetProductDetails(t *testing.T) {
	svc, _, _ := newProductFixture()
	ctx := context.Background()

	productID, err := svc.AddProduct(ctx, testProduct("Tea"), nil, nil)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	product, err := svc.GetProductDetails(ctx, productID)
	if err != nil {
		t.Fatalf("GetProductDetails: %v", err)
	}
	if product == nil || product.Name != "Tea" {
		t.Errorf("product = %+v", product)
	}

	missing, err := svc.GetProductDetails(ctx, "no-such-product")
	if err != nil {
		t.Fatalf("GetProductDetails missing: %v", err)
	}
	if missing != nil {
		t.Errorf("missing product = %+v, want nil", missing)
	}
}

func TestDeleteProductScopedCleanup(t *testing.T) {
	svc, _, blobs := newProductFixture()
	ctx := context.Background()

	images := []Photo{{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")}}
	video := &Photo{Name: "v.mp4", ContentType: "video/mp4", Data: []byte("v")}

	doomedID, err := svc.AddProduct(ctx, testProduct("Doomed"), images, video)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	keptID, err := svc.AddProduct(ctx, testProduct("Kept"), images, video)
	if err != nil {
		t.Fatalf("AddProduct: %v", err)
	}

	if err := svc.DeleteProduct(ctx, doomedID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	product, err := svc.GetProductDetails(ctx, doomedID)
	if err != nil {
		t.Fatalf("GetProductDetails: %v", err)
	}
	if product != nil {
		t.Error("record still readable after DeleteProduct")
	}

	if blobs.Exists("product_images/" + doomedID + "/a.jpg") {
		t.Error("deleted product's image still stored")
	}
	if blobs.Exists("product_videos/" + doomedID) {
		t.Error("deleted product's video still stored")
	}
	if !blobs.Exists("product_images/" + keptID + "/a.jpg") {
		t.Error("cleanup removed another product's image")
	}
	if !blobs.Exists("product_videos/" + keptID) {
		t.Error("cleanup removed another product's video")
	}

	// Deleting an absent product is a no-op.
	if err := svc.DeleteProduct(ctx, "no-such-product"); err != nil {
		t.Errorf("DeleteProduct of missing product: %v", err)
	}
}

func TestGetAllProducts(t *testing.T) {
	svc, st, _ := newProductFixture()
	ctx := context.Background()

	// Stored documents do not carry their own id; the key is the id.
	if err := st.Set(ctx, "products/p1", testProduct("One")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := st.Set(ctx, "products/p2", testProduct("Two")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	products, err := svc.GetAllProducts(ctx)
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	byID := make(map[string]models.Product)
	for _, p := range products {
		byID[p.ProductID] = p
	}
	if byID["p1"].Name != "One" || byID["p2"].Name != "Two" {
		t.Errorf("products = %+v", byID)
	}
}

func TestGetAllProductsEmpty(t *testing.T) {
	svc, _, _ := newProductFixture()

	products, err := svc.GetAllProducts(context.Background())
	if err != nil {
		t.Fatalf("GetAllProducts: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Errorf("products = %v, want empty non-nil slice", products)
	}
}

func TestGenerateUniqueIDFormat(t *testing.T) {
	format := regexp.MustCompile(`^[0-9a-z]+_[0-9a-z]{5}$`)
	for i := 0; i < 10000; i++ {
		id := GenerateUniqueID()
		if !format.MatchString(id) {
			t.Fatalf("id %q does not match timestamp_suffix format", id)
		}
		ts := id[:strings.IndexByte(id, '_')]
		if _, err := strconv.ParseInt(ts, 36, 64); err != nil {
			t.Fatalf("id %q has unparseable timestamp part: %v", id, err)
		}
	}
}

func TestGenerateUniqueIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateUniqueID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
