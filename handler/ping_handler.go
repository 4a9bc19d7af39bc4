package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the unauthenticated liveness check.
func Ping(c *gin.Context) {
	c.String(http.StatusOK, "Server is alive...")
}

// SecuredPing only answers behind the auth middleware.
func SecuredPing(c *gin.Context) {
	c.String(http.StatusOK, "All good. You only get this message if you're authenticated")
}
