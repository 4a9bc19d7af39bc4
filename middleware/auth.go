package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"notable/auth"
	"notable/model"
	"notable/utils"
)

// Context keys set by RequireAuth.
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// RequireAuth guards a route group with the bearer strategy. The token
// travels in the authorization header, with or without a "Bearer "
// prefix. Every failure (missing header, bad signature, expired token,
// unknown subject) answers with the same 401 body; the cause is not
// surfaced to the client.
func RequireAuth(bearer *auth.BearerStrategy) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		user, err := bearer.Verify(c.Request.Context(), tokenString)
		if err != nil {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID.Hex())
		c.Next()
	}
}

// CurrentUser returns the identity RequireAuth attached to the request.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
