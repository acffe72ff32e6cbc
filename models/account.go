package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is the identity-provider side of a user: credentials only,
// never profile data. The profile lives in the document store under the
// role path keyed by the account id.
type Account struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password,omitempty" json:"-"`
	Role            string             `bson:"role" json:"role"`
	Provider        string             `bson:"provider,omitempty" json:"provider,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	RecoveryCode    string             `bson:"recovery_code,omitempty" json:"-"`
	RecoveryExpires time.Time          `bson:"recovery_expires,omitempty" json:"-"`
}

type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Role      string             `bson:"role"`
	IP        string             `bson:"ip,omitempty"`
	Device    string             `bson:"device,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}
