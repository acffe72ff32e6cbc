package identity

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/utils"
)

// Sender delivers recovery mail; satisfied by utils.Mailer.
type Sender interface {
	Send(to, subject, body string) error
}

const recoveryCodeTTL = 15 * time.Minute

// Mongo keeps accounts and sessions in their own collections, hashes
// passwords with bcrypt and issues HS256 JWT session tokens.
type Mongo struct {
	accounts *mongo.Collection
	sessions *mongo.Collection
	jwtKey   []byte
	mailer   Sender
	verify   verifyFunc
}

func NewMongo(db *mongo.Database, jwtKey []byte, mailer Sender) *Mongo {
	return &Mongo{
		accounts: db.Collection("accounts"),
		sessions: db.Collection("sessions"),
		jwtKey:   jwtKey,
		mailer:   mailer,
		verify:   verifyProviderToken,
	}
}

func (m *Mongo) CreateAccount(ctx context.Context, email, password, role string) (string, error) {
	err := m.accounts.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return "", ErrAccountExists
	}
	if err != mongo.ErrNoDocuments {
		return "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	account := models.Account{
		Email:     email,
		Password:  hashed,
		Role:      role,
		CreatedAt: time.Now(),
	}
	res, err := m.accounts.InsertOne(ctx, account)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("identity: unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (m *Mongo) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var account models.Account
	err := m.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := utils.VerifyPassword(account.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return m.openSession(ctx, account)
}

func (m *Mongo) SignInWithProvider(ctx context.Context, provider, idToken string) (*Session, error) {
	email, err := m.verify(ctx, provider, idToken)
	if err != nil {
		return nil, err
	}

	var account models.Account
	err = m.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return m.openSession(ctx, account)
}

func (m *Mongo) openSession(ctx context.Context, account models.Account) (*Session, error) {
	userID := account.ID.Hex()
	token, err := utils.GenerateToken(m.jwtKey, userID, account.Role)
	if err != nil {
		return nil, err
	}
	session := models.Session{
		UserID:    userID,
		Role:      account.Role,
		Timestamp: time.Now(),
	}
	if _, err := m.sessions.InsertOne(ctx, session); err != nil {
		return nil, err
	}
	return &Session{UserID: userID, Role: account.Role, Token: token}, nil
}

func (m *Mongo) SignOut(ctx context.Context, userID string) error {
	_, err := m.sessions.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func (m *Mongo) RequestPasswordReset(ctx context.Context, email string) error {
	err := m.accounts.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}

	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	_, err = m.accounts.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{
		"recovery_code":    code,
		"recovery_expires": time.Now().Add(recoveryCodeTTL),
	}})
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(recoveryCodeTTL.Minutes()))
	return m.mailer.Send(email, "Password reset code", body)
}

func (m *Mongo) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	var account models.Account
	err := m.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err == mongo.ErrNoDocuments {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}
	if account.RecoveryCode == "" || account.RecoveryCode != code || time.Now().After(account.RecoveryExpires) {
		return ErrInvalidCode
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = m.accounts.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set":   bson.M{"password": hashed},
		"$unset": bson.M{"recovery_code": "", "recovery_expires": ""},
	})
	return err
}

// PurgeExpired drops sessions older than a day and recovery codes past
// their expiry; run daily by the scheduler.
func (m *Mongo) PurgeExpired(ctx context.Context) error {
	_, err := m.sessions.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": time.Now().Add(-24 * time.Hour)}})
	if err != nil {
		return err
	}
	_, err = m.accounts.UpdateMany(ctx,
		bson.M{"recovery_expires": bson.M{"$lt": time.Now()}},
		bson.M{"$unset": bson.M{"recovery_code": "", "recovery_expires": ""}})
	return err
}
