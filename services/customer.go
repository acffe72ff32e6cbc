// Package services implements the four service namespaces over the
// platform collaborators. Every operation takes a context, returns an
// explicit error, and holds no state between calls.
package services

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

// ErrRecordNotFound means an account authenticated but has no stored
// record at its role path. Sign-in never provisions one.
var ErrRecordNotFound = errors.New("services: no stored record for this account")

type CustomerLogin struct {
	UserID   string          `json:"userId"`
	Token    string          `json:"token"`
	Customer models.Customer `json:"customer"`
}

type CustomerService struct {
	auth  identity.Identity
	store store.Store
	blobs blob.Storage
}

func NewCustomerService(auth identity.Identity, st store.Store, blobs blob.Storage) *CustomerService {
	return &CustomerService{auth: auth, store: st, blobs: blobs}
}

func customerPath(userID string) string {
	return "users/customer/" + userID
}

// Register creates the identity account, uploads the profile photo and
// writes the customer record. The first failing step aborts the rest;
// an already-created account or uploaded photo is not rolled back.
func (s *CustomerService) Register(ctx context.Context, customer models.Customer, photo Photo) (string, error) {
	userID, err := s.auth.CreateAccount(ctx, customer.UserData.Email, customer.UserData.Password, "customer")
	if err != nil {
		log.Printf("Error registering customer: %v", err)
		return "", err
	}

	photoURL, err := uploadPhoto(ctx, s.blobs, "customer_photos/"+userID, photo)
	if err != nil {
		log.Printf("Error registering customer: %v", err)
		return "", err
	}

	customer.UserID = userID
	customer.UserData.PhotoURL = photoURL
	if err := s.store.Set(ctx, customerPath(userID), customer); err != nil {
		log.Printf("Error registering customer: %v", err)
		return "", err
	}
	return userID, nil
}

func (s *CustomerService) Login(ctx context.Context, email, password string) (*CustomerLogin, error) {
	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.fetchLogin(ctx, session)
}

func (s *CustomerService) LoginWithGoogle(ctx context.Context, idToken string) (*CustomerLogin, error) {
	return s.loginFederated(ctx, identity.ProviderGoogle, idToken)
}

func (s *CustomerService) LoginWithFacebook(ctx context.Context, idToken string) (*CustomerLogin, error) {
	return s.loginFederated(ctx, identity.ProviderFacebook, idToken)
}

func (s *CustomerService) loginFederated(ctx context.Context, provider, idToken string) (*CustomerLogin, error) {
	session, err := s.auth.SignInWithProvider(ctx, provider, idToken)
	if err != nil {
		return nil, err
	}
	return s.fetchLogin(ctx, session)
}

func (s *CustomerService) fetchLogin(ctx context.Context, session *identity.Session) (*CustomerLogin, error) {
	var customer models.Customer
	found, err := s.store.Get(ctx, customerPath(session.UserID), &customer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRecordNotFound
	}
	return &CustomerLogin{UserID: session.UserID, Token: session.Token, Customer: customer}, nil
}

// Update merge-writes the given top-level fields onto the stored
// record; fields not present are left untouched.
func (s *CustomerService) Update(ctx context.Context, userID string, fields bson.M) error {
	return s.store.Merge(ctx, customerPath(userID), fields)
}

// Delete revokes the target customer's sessions and removes the stored
// record. The identity account and the uploaded photo remain.
func (s *CustomerService) Delete(ctx context.Context, userID string) error {
	if err := s.auth.SignOut(ctx, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, customerPath(userID))
}

// AddToCart appends one entry to the cart array in a single atomic
// update; sibling fields and existing entries are preserved, and
// concurrent appends do not lose each other.
func (s *CustomerService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	entry := models.ProductCart{
		ProductID:   productID,
		Quantity:    quantity,
		AddedToCart: time.Now().UTC().Format(time.RFC3339),
	}
	return s.store.Mutate(ctx, customerPath(userID), store.Mutation{
		Push: bson.M{"productcart": entry},
	})
}

// UpdateCart replaces the whole cart array.
func (s *CustomerService) UpdateCart(ctx context.Context, userID string, cart []models.ProductCart) error {
	return s.store.Merge(ctx, customerPath(userID), bson.M{"productcart": cart})
}

// PlaceOrder appends the order and clears the cart in one atomic
// update; either both fields change or neither does.
func (s *CustomerService) PlaceOrder(ctx context.Context, userID string, order models.Order) error {
	return s.store.Mutate(ctx, customerPath(userID), store.Mutation{
		Push: bson.M{"orders": order},
		Set:  bson.M{"productcart": bson.A{}},
	})
}
