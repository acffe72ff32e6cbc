package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

type AdminLogin struct {
	UserID string           `json:"userId"`
	Token  string           `json:"token"`
	Admin  models.AdminData `json:"admin"`
}

type AdminService struct {
	auth  identity.Identity
	store store.Store
	blobs blob.Storage
}

func NewAdminService(auth identity.Identity, st store.Store, blobs blob.Storage) *AdminService {
	return &AdminService{auth: auth, store: st, blobs: blobs}
}

func adminPath(userID string) string {
	return "users/admin/" + userID
}

func (s *AdminService) Register(ctx context.Context, admin models.AdminData, photo Photo) (string, error) {
	userID, err := s.auth.CreateAccount(ctx, admin.Email, admin.Password, "admin")
	if err != nil {
		log.Printf("Error registering admin: %v", err)
		return "", err
	}

	photoURL, err := uploadPhoto(ctx, s.blobs, "admin_photos/"+userID, photo)
	if err != nil {
		log.Printf("Error registering admin: %v", err)
		return "", err
	}

	admin.PhotoURL = photoURL
	if err := s.store.Set(ctx, adminPath(userID), admin); err != nil {
		log.Printf("Error registering admin: %v", err)
		return "", err
	}
	return userID, nil
}

func (s *AdminService) Login(ctx context.Context, email, password string) (*AdminLogin, error) {
	session, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.fetchLogin(ctx, session)
}

func (s *AdminService) LoginWithGoogle(ctx context.Context, idToken string) (*AdminLogin, error) {
	return s.loginFederated(ctx, identity.ProviderGoogle, idToken)
}

func (s *AdminService) LoginWithFacebook(ctx context.Context, idToken string) (*AdminLogin, error) {
	return s.loginFederated(ctx, identity.ProviderFacebook, idToken)
}

func (s *AdminService) loginFederated(ctx context.Context, provider, idToken string) (*AdminLogin, error) {
	session, err := s.auth.SignInWithProvider(ctx, provider, idToken)
	if err != nil {
		return nil, err
	}
	return s.fetchLogin(ctx, session)
}

func (s *AdminService) fetchLogin(ctx context.Context, session *identity.Session) (*AdminLogin, error) {
	var admin models.AdminData
	found, err := s.store.Get(ctx, adminPath(session.UserID), &admin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRecordNotFound
	}
	return &AdminLogin{UserID: session.UserID, Token: session.Token, Admin: admin}, nil
}

func (s *AdminService) Update(ctx context.Context, userID string, fields bson.M) error {
	return s.store.Merge(ctx, adminPath(userID), fields)
}

// Delete revokes the target admin's sessions and removes the stored
// record. The identity account and the uploaded photo remain.
func (s *AdminService) Delete(ctx context.Context, userID string) error {
	if err := s.auth.SignOut(ctx, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, adminPath(userID))
}

// GetAdminDetails returns the stored record, or nil when none exists.
func (s *AdminService) GetAdminDetails(ctx context.Context, userID string) (*models.AdminData, error) {
	var admin models.AdminData
	found, err := s.store.Get(ctx, adminPath(userID), &admin)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &admin, nil
}
