// Package identity is the authentication collaborator: account creation
// keyed by email+password, password and federated sign-in, targeted
// sign-out, and password recovery. It owns credentials and sessions
// only; profile records live in the document store.
package identity

import (
	"context"
	"errors"
)

var (
	ErrAccountExists      = errors.New("identity: account already exists")
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	ErrAccountNotFound    = errors.New("identity: account not found")
	ErrInvalidCode        = errors.New("identity: invalid or expired code")
)

const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// Session is the result of a successful sign-in: the account id, the
// role it was created with, and a bearer token for subsequent requests.
type Session struct {
	UserID string
	Role   string
	Token  string
}

type Identity interface {
	// CreateAccount registers email+password and returns the new unique
	// account id. Returns ErrAccountExists for a duplicate email.
	CreateAccount(ctx context.Context, email, password, role string) (string, error)
	// SignIn authenticates by email+password.
	SignIn(ctx context.Context, email, password string) (*Session, error)
	// SignInWithProvider authenticates with a provider-issued ID token
	// (ProviderGoogle or ProviderFacebook). It never provisions an
	// account: an unknown verified email yields ErrAccountNotFound.
	SignInWithProvider(ctx context.Context, provider, idToken string) (*Session, error)
	// SignOut revokes every session of the given account only.
	SignOut(ctx context.Context, userID string) error

	// RequestPasswordReset issues a short-lived code and mails it to the
	// account's address.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword verifies the code and replaces the password.
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}
