package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notable/auth"
	"notable/model"
)

// ErrEmailTaken reports a signup against an already registered email.
var ErrEmailTaken = errors.New("email already exists")

// SignupInput carries exactly the fields a caller may set. Roles are
// assigned here, never taken from the request.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthService struct {
	Users       UserStore
	Tokens      *auth.TokenService
	Credentials *auth.CredentialStrategy
}

func NewAuthService(users UserStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		Users:       users,
		Tokens:      tokens,
		Credentials: auth.NewCredentialStrategy(users),
	}
}

// Signup creates a user and issues their first token. The password is
// salted and hashed before anything reaches the store; the plaintext is
// never persisted.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*model.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Email:           email,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		DisplayName:     strings.TrimSpace(fmt.Sprintf("%s %s", input.FirstName, input.LastName)),
		Salt:            salt,
		Password:        auth.HashPassword(input.Password, salt),
		Provider:        model.ProviderLocal,
		ProfileImageURL: "client/img/profile/default.png",
		Roles:           []string{model.RoleUser},
	}

	if err := ValidateUser(user); err != nil {
		return nil, "", err
	}

	if err := s.Users.InsertUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Signin verifies the credentials and issues a token whose subject is the
// user's id.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.Credentials.Verify(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.Tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
