package auth

import (
	"context"
	"errors"
	"strings"

	"notable/model"
)

// ErrRejected is returned by both strategies for every verification
// failure. Credential verification deliberately reports the same error
// for an unknown email and a wrong password so the response cannot be
// used to enumerate accounts.
var ErrRejected = errors.New("invalid email or password")

// UserFinder is the slice of user storage the strategies need.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id string) (*model.User, error)
}

// CredentialStrategy verifies an email and password pair. Used only on
// the signin endpoint.
type CredentialStrategy struct {
	users UserFinder
}

func NewCredentialStrategy(users UserFinder) *CredentialStrategy {
	return &CredentialStrategy{users: users}
}

func (s *CredentialStrategy) Verify(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !Authenticate(user, password) {
		return nil, ErrRejected
	}
	return user, nil
}

// BearerStrategy verifies a signed token and resolves it to a user.
// Guards every protected endpoint.
type BearerStrategy struct {
	tokens *TokenService
	users  UserFinder
}

func NewBearerStrategy(tokens *TokenService, users UserFinder) *BearerStrategy {
	return &BearerStrategy{tokens: tokens, users: users}
}

// Verify parses the token and looks up the claim subject. A subject that
// no longer resolves is rejected, so deleting a user invalidates their
// outstanding tokens even without a revocation list.
func (s *BearerStrategy) Verify(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, ErrRejected
	}
	user, err := s.users.FindUserByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrRejected
	}
	return user, nil
}
