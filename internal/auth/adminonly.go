package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly rejects requests whose session is missing or lacks the admin
// role, mirroring the gate the mutation actions run themselves. Rejecting
// here keeps unauthorized callers out of the admin surface before any
// payload is even read.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := RequireAdmin(c.Request.Context()); err != nil {
			if errors.Is(err, ErrNotAdmin) {
				c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
