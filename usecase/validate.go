package usecase

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"notable/model"
)

var validate = validator.New()

// ValidationError reports missing or malformed input. Handlers answer it
// with 422.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateUser checks a full candidate record. Every rule sees the whole
// user, so a rule can depend on another field without capturing outside
// context.
func ValidateUser(user *model.User) error {
	if user.Provider == model.ProviderLocal {
		if strings.TrimSpace(user.Email) == "" {
			return &ValidationError{Message: "Please fill a valid email address"}
		}
		if err := validate.Var(user.Email, "email"); err != nil {
			return &ValidationError{Message: "Please fill a valid email address"}
		}
	}
	if len(user.Roles) == 0 {
		return &ValidationError{Message: "Please provide at least one role"}
	}
	for _, role := range user.Roles {
		if role != model.RoleUser && role != model.RoleAdmin {
			return &ValidationError{Message: fmt.Sprintf("Unknown role: %s", role)}
		}
	}
	return nil
}

func ValidateNote(note *model.Note) error {
	if strings.TrimSpace(note.Text) == "" {
		return &ValidationError{Message: "Please give the note some text"}
	}
	if note.User.IsZero() {
		return &ValidationError{Message: "A note must have an owner"}
	}
	return nil
}

func ValidateTag(tag *model.Tag) error {
	if strings.TrimSpace(tag.Name) == "" {
		return &ValidationError{Message: "Please give the tag a name"}
	}
	return nil
}
