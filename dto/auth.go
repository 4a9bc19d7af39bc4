package dto

import "notable/model"

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of a successful signin or signup. The user's
// digest and salt never serialize; the model hides them from JSON.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}
