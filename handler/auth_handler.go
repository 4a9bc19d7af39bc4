package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notable/auth"
	"notable/dto"
	"notable/middleware"
	"notable/usecase"
	"notable/utils"
)

type AuthHandler struct {
	Auth *usecase.AuthService
}

func NewAuthHandler(authService *usecase.AuthService) *AuthHandler {
	return &AuthHandler{Auth: authService}
}

// Signup registers a user and answers with their first token. Roles
// never come from the request body.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "No email or password provided")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.TrackAuthAttempt("signup", "failure")
		utils.UnprocessableError(c, "No email or password provided")
		return
	}

	user, token, err := h.Auth.Signup(c.Request.Context(), usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		middleware.TrackAuthAttempt("signup", "failure")

		var validationErr *usecase.ValidationError
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.Conflict(c, "Email already exists")
		case errors.As(err, &validationErr):
			utils.UnprocessableError(c, validationErr.Message)
		default:
			utils.BadRequest(c, utils.GetErrorMessage(err))
		}
		return
	}

	middleware.TrackAuthAttempt("signup", "success")
	utils.Success(c, dto.AuthResponse{Token: token, User: user})
}

// Signin answers 401 for every credential failure with one message, so
// the response cannot tell an unknown email from a wrong password.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.TrackAuthAttempt("signin", "failure")
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	user, token, err := h.Auth.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.TrackAuthAttempt("signin", "failure")
		if errors.Is(err, auth.ErrRejected) {
			utils.Unauthorized(c, "Invalid email or password")
			return
		}
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}

	middleware.TrackAuthAttempt("signin", "success")
	utils.Success(c, dto.AuthResponse{Token: token, User: user})
}
