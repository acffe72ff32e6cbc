package identity

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryAccount struct {
	id       string
	email    string
	password string
	role     string
	code     string
	expires  time.Time
}

// Memory is the in-process Identity used by tests. Passwords are kept
// in plain text; only the contract matters here.
type Memory struct {
	mu        sync.Mutex
	next      int
	accounts  map[string]*memoryAccount // keyed by email
	federated map[string]string         // provider+token -> email
	signedOut []string
	mail      []string
}

func NewMemory() *Memory {
	return &Memory{
		accounts:  make(map[string]*memoryAccount),
		federated: make(map[string]string),
	}
}

func (m *Memory) CreateAccount(ctx context.Context, email, password, role string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[email]; ok {
		return "", ErrAccountExists
	}
	m.next++
	id := fmt.Sprintf("uid-%d", m.next)
	m.accounts[email] = &memoryAccount{id: id, email: email, password: password, role: role}
	return id, nil
}

func (m *Memory) SignIn(ctx context.Context, email, password string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[email]
	if !ok || account.password != password {
		return nil, ErrInvalidCredentials
	}
	return &Session{UserID: account.id, Role: account.role, Token: "token-" + account.id}, nil
}

func (m *Memory) SignInWithProvider(ctx context.Context, provider, idToken string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email, ok := m.federated[provider+":"+idToken]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	account, ok := m.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return &Session{UserID: account.id, Role: account.role, Token: "token-" + account.id}, nil
}

func (m *Memory) SignOut(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signedOut = append(m.signedOut, userID)
	return nil
}

func (m *Memory) RequestPasswordReset(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[email]
	if !ok {
		return ErrAccountNotFound
	}
	account.code = "000000"
	account.expires = time.Now().Add(recoveryCodeTTL)
	m.mail = append(m.mail, email)
	return nil
}

func (m *Memory) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[email]
	if !ok {
		return ErrAccountNotFound
	}
	if account.code == "" || account.code != code || time.Now().After(account.expires) {
		return ErrInvalidCode
	}
	account.password = newPassword
	account.code = ""
	return nil
}

// RegisterFederated binds a provider token to an email; test helper.
func (m *Memory) RegisterFederated(provider, idToken, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.federated[provider+":"+idToken] = email
}

// SignedOut returns the account ids SignOut was called with; test helper.
func (m *Memory) SignedOut() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.signedOut...)
}

// HasAccount reports whether an account exists for email; test helper.
func (m *Memory) HasAccount(email string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.accounts[email]
	return ok
}
