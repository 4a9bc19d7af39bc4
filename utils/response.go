package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies at the boundary are always a flat {"error": ...} or
// {"message": ...}; nothing else leaks to the client.

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

// BadRequest carries a human-readable message extracted from the
// underlying datastore error.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// UnprocessableError reports missing or malformed input.
func UnprocessableError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": message})
}

// Conflict reports a resource conflict such as a duplicate email. It
// answers 422 rather than 409; existing clients depend on that.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}

func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
