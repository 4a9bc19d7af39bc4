package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"notable/dto"
	"notable/middleware"
	"notable/usecase"
	"notable/utils"
)

type UserHandler struct {
	Users *usecase.UserService
}

func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	utils.Success(c, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Users.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	if user == nil {
		utils.NotFound(c, "No user with that identifier has been found")
		return
	}
	utils.Success(c, user)
}

// GetProfile returns the signed-in user.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}
	utils.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	updated, err := h.Users.UpdateProfile(c.Request.Context(), user, req.FirstName, req.LastName)
	if err != nil {
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	utils.Success(c, updated)
}

// ChangePassword re-salts and re-hashes. Tokens issued before the change
// stay valid until expiry.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableError(c, "invalid request body")
		return
	}

	if err := h.Users.ChangePassword(c.Request.Context(), user, req.Password); err != nil {
		var validationErr *usecase.ValidationError
		if errors.As(err, &validationErr) {
			utils.UnprocessableError(c, validationErr.Message)
			return
		}
		utils.BadRequest(c, utils.GetErrorMessage(err))
		return
	}
	utils.Success(c, gin.H{"message": "Password updated"})
}
