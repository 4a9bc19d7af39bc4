package usecase

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"notable/model"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    model.User
		wantErr bool
	}{
		{
			"valid local user",
			model.User{Provider: model.ProviderLocal, Email: "a@x.com", Roles: []string{model.RoleUser}},
			false,
		},
		{
			"admin role accepted",
			model.User{Provider: model.ProviderLocal, Email: "a@x.com", Roles: []string{model.RoleUser, model.RoleAdmin}},
			false,
		},
		{
			"missing email",
			model.User{Provider: model.ProviderLocal, Roles: []string{model.RoleUser}},
			true,
		},
		{
			"malformed email",
			model.User{Provider: model.ProviderLocal, Email: "nope", Roles: []string{model.RoleUser}},
			true,
		},
		{
			"no roles",
			model.User{Provider: model.ProviderLocal, Email: "a@x.com"},
			true,
		},
		{
			"unknown role",
			model.User{Provider: model.ProviderLocal, Email: "a@x.com", Roles: []string{"superuser"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUser() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNote(t *testing.T) {
	owner := primitive.NewObjectID()

	if err := ValidateNote(&model.Note{Text: "hi", User: owner}); err != nil {
		t.Errorf("valid note rejected: %v", err)
	}
	if err := ValidateNote(&model.Note{Text: " ", User: owner}); err == nil {
		t.Error("blank text accepted")
	}
	if err := ValidateNote(&model.Note{Text: "hi"}); err == nil {
		t.Error("ownerless note accepted")
	}
}

func TestValidateTag(t *testing.T) {
	if err := ValidateTag(&model.Tag{Name: "tag1"}); err != nil {
		t.Errorf("valid tag rejected: %v", err)
	}
	if err := ValidateTag(&model.Tag{}); err == nil {
		t.Error("nameless tag accepted")
	}
}
