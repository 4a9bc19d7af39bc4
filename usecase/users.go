package usecase

import (
	"context"

	"notable/auth"
	"notable/model"
)

type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.Users.ListUsers(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.Users.FindUserByID(ctx, id)
}

// ChangePassword regenerates the salt and stores the new digest. Tokens
// issued before the change stay valid until they expire; there is no
// revocation list.
func (s *UserService) ChangePassword(ctx context.Context, user *model.User, newPassword string) error {
	if newPassword == "" {
		return &ValidationError{Message: "No password provided"}
	}

	salt, err := auth.GenerateSalt()
	if err != nil {
		return err
	}
	digest := auth.HashPassword(newPassword, salt)

	_, err = s.Users.UpdatePassword(ctx, user.ID, salt, digest)
	return err
}

func (s *UserService) UpdateProfile(ctx context.Context, user *model.User, firstName, lastName string) (*model.User, error) {
	displayName := firstName + " " + lastName

	if _, err := s.Users.UpdateProfile(ctx, user.ID, firstName, lastName, displayName); err != nil {
		return nil, err
	}
	return s.Users.FindUserByID(ctx, user.ID.Hex())
}
