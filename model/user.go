package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user may carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ProviderLocal marks accounts created through the signup endpoint with
// an email and password.
const ProviderLocal = "local"

type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName       string             `bson:"firstName" json:"firstName"`
	LastName        string             `bson:"lastName" json:"lastName"`
	DisplayName     string             `bson:"displayName" json:"displayName"`
	Email           string             `bson:"email" json:"email"`
	Password        string             `bson:"password" json:"-"` // salted PBKDF2 digest, never the plaintext
	Salt            string             `bson:"salt" json:"-"`
	ProfileImageURL string             `bson:"profileImageURL" json:"profileImageURL"`
	Provider        string             `bson:"provider" json:"provider"`
	Roles           []string           `bson:"roles" json:"roles"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
