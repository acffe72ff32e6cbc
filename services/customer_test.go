package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

func newCustomerFixture() (*CustomerService, *identity.Memory, *store.Memory, *blob.Memory) {
	auth := identity.NewMemory()
	st := store.NewMemory()
	blobs := blob.NewMemory()
	return NewCustomerService(auth, st, blobs), auth, st, blobs
}

func testCustomer(email string) models.Customer {
	return models.Customer{
		UserData: models.UserData{
			FirstName: "Asha",
			Email:     email,
			Password:  "secret",
			Phone:     "9876543210",
		},
	}
}

func testPhoto() Photo {
	return Photo{Name: "profile.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")}
}

func TestCustomerRegister(t *testing.T) {
	svc, _, st, blobs := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("asha@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if userID == "" {
		t.Fatal("Register returned empty user id")
	}

	if !blobs.Exists("customer_photos/" + userID) {
		t.Errorf("profile photo not uploaded at customer_photos/%s", userID)
	}

	var stored models.Customer
	found, err := st.Get(ctx, "users/customer/"+userID, &stored)
	if err != nil || !found {
		t.Fatalf("stored record: found=%v err=%v", found, err)
	}
	if stored.UserID != userID {
		t.Errorf("stored UserID = %q, want %q", stored.UserID, userID)
	}
	if stored.UserData.PhotoURL != "https://blobs.test/customer_photos/"+userID {
		t.Errorf("stored PhotoURL = %q", stored.UserData.PhotoURL)
	}
}

func TestCustomerRegisterDuplicateEmail(t *testing.T) {
	svc, _, st, blobs := newCustomerFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, testCustomer("dup@example.com"), testPhoto()); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	before := blobs.Len()

	_, err := svc.Register(ctx, testCustomer("dup@example.com"), testPhoto())
	if !errors.Is(err, identity.ErrAccountExists) {
		t.Fatalf("second Register err = %v, want ErrAccountExists", err)
	}
	if blobs.Len() != before {
		t.Error("duplicate registration uploaded a photo")
	}
	docs, err := st.List(ctx, "users/customer")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("got %d customer records, want 1", len(docs))
	}
}

func TestCustomerLogin(t *testing.T) {
	svc, _, _, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("login@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	result, err := svc.Login(ctx, "login@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.UserID != userID {
		t.Errorf("UserID = %q, want %q", result.UserID, userID)
	}
	if result.Token == "" {
		t.Error("Login returned empty token")
	}
	if result.Customer.UserData.Email != "login@example.com" {
		t.Errorf("Customer.Email = %q", result.Customer.UserData.Email)
	}

	if _, err := svc.Login(ctx, "login@example.com", "wrong"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
}

func TestCustomerLoginWithoutRecord(t *testing.T) {
	svc, auth, _, _ := newCustomerFixture()
	ctx := context.Background()

	// Account exists but no customer record was ever written.
	if _, err := auth.CreateAccount(ctx, "ghost@example.com", "secret", "customer"); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if _, err := svc.Login(ctx, "ghost@example.com", "secret"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Login err = %v, want ErrRecordNotFound", err)
	}
}

func TestCustomerLoginWithGoogle(t *testing.T) {
	svc, auth, _, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("fed@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	auth.RegisterFederated(identity.ProviderGoogle, "good-token", "fed@example.com")

	result, err := svc.LoginWithGoogle(ctx, "good-token")
	if err != nil {
		t.Fatalf("LoginWithGoogle: %v", err)
	}
	if result.UserID != userID {
		t.Errorf("UserID = %q, want %q", result.UserID, userID)
	}

	if _, err := svc.LoginWithGoogle(ctx, "bad-token"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Errorf("bad token err = %v, want ErrInvalidCredentials", err)
	}

	// Federated sign-in never provisions an account.
	auth.RegisterFederated(identity.ProviderFacebook, "new-user-token", "stranger@example.com")
	if _, err := svc.LoginWithFacebook(ctx, "new-user-token"); !errors.Is(err, identity.ErrAccountNotFound) {
		t.Errorf("unknown account err = %v, want ErrAccountNotFound", err)
	}
	if auth.HasAccount("stranger@example.com") {
		t.Error("federated login provisioned an account")
	}
}

func TestCustomerUpdateMergesFields(t *testing.T) {
	svc, _, st, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("merge@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = svc.Update(ctx, userID, bson.M{"userdata.phone": "1112223333"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	var stored models.Customer
	if _, err := st.Get(ctx, "users/customer/"+userID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.UserData.Phone != "1112223333" {
		t.Errorf("Phone = %q, want updated value", stored.UserData.Phone)
	}
	if stored.UserData.Email != "merge@example.com" {
		t.Errorf("Email = %q, untouched field was lost", stored.UserData.Email)
	}
	if stored.UserData.FirstName != "Asha" {
		t.Errorf("FirstName = %q, untouched field was lost", stored.UserData.FirstName)
	}
}

func TestCustomerAddToCart(t *testing.T) {
	svc, _, st, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("cart@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.AddToCart(ctx, userID, "prod-1", 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if err := svc.AddToCart(ctx, userID, "prod-2", 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	var stored models.Customer
	if _, err := st.Get(ctx, "users/customer/"+userID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.ProductCart) != 2 {
		t.Fatalf("cart has %d entries, want 2", len(stored.ProductCart))
	}
	if stored.ProductCart[0].ProductID != "prod-1" || stored.ProductCart[1].ProductID != "prod-2" {
		t.Errorf("cart order = %q, %q", stored.ProductCart[0].ProductID, stored.ProductCart[1].ProductID)
	}
	if _, err := time.Parse(time.RFC3339, stored.ProductCart[0].AddedToCart); err != nil {
		t.Errorf("AddedToCart %q is not RFC3339: %v", stored.ProductCart[0].AddedToCart, err)
	}
	if stored.UserData.Email != "cart@example.com" {
		t.Error("cart append clobbered sibling fields")
	}
}

func TestCustomerAddToCartMissingRecord(t *testing.T) {
	svc, _, _, _ := newCustomerFixture()

	err := svc.AddToCart(context.Background(), "no-such-user", "prod-1", 1)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("AddToCart err = %v, want store.ErrNotFound", err)
	}
}

func TestCustomerUpdateCart(t *testing.T) {
	svc, _, st, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("replace@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.AddToCart(ctx, userID, "prod-1", 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	cart := []models.ProductCart{{ProductID: "prod-9", Quantity: 3, AddedToCart: "2026-01-01T00:00:00Z"}}
	if err := svc.UpdateCart(ctx, userID, cart); err != nil {
		t.Fatalf("UpdateCart: %v", err)
	}

	var stored models.Customer
	if _, err := st.Get(ctx, "users/customer/"+userID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.ProductCart) != 1 || stored.ProductCart[0].ProductID != "prod-9" {
		t.Errorf("cart after replace = %+v", stored.ProductCart)
	}
}

func TestCustomerPlaceOrder(t *testing.T) {
	svc, _, st, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("order@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := svc.AddToCart(ctx, userID, "prod-1", 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	order := models.Order{
		OrderID:  "ord-1",
		Products: []models.ProductCart{{ProductID: "prod-1", Quantity: 2}},
		Status:   "placed",
	}
	if err := svc.PlaceOrder(ctx, userID, order); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	var stored models.Customer
	if _, err := st.Get(ctx, "users/customer/"+userID, &stored); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.Orders) != 1 || stored.Orders[0].OrderID != "ord-1" {
		t.Fatalf("orders after place = %+v", stored.Orders)
	}
	if len(stored.ProductCart) != 0 {
		t.Errorf("cart not cleared, has %d entries", len(stored.ProductCart))
	}
	if err := svc.PlaceOrder(ctx, "no-such-user", order); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("PlaceOrder for missing record err = %v, want store.ErrNotFound", err)
	}
}

func TestCustomerDelete(t *testing.T) {
	svc, auth, st, _ := newCustomerFixture()
	ctx := context.Background()

	userID, err := svc.Register(ctx, testCustomer("gone@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	otherID, err := svc.Register(ctx, testCustomer("stays@example.com"), testPhoto())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Delete(ctx, userID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var stored models.Customer
	found, err := st.Get(ctx, "users/customer/"+userID, &stored)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("record still present after Delete")
	}
	if found, _ := st.Get(ctx, "users/customer/"+otherID, &stored); !found {
		t.Error("Delete removed another customer's record")
	}

	signedOut := auth.SignedOut()
	if len(signedOut) != 1 || signedOut[0] != userID {
		t.Errorf("SignOut calls = %v, want exactly [%s]", signedOut, userID)
	}
}
