package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// RecoveryMiddleware turns a handler panic into a bare 500. The panic
// value goes to the log, never to the client.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
