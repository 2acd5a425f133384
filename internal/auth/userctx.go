package auth

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
	"github.com/devfolio/portfolio-backend/internal/auth/middleware"
)

// UserEnsurer upserts the users row backing a verified Firebase identity.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, req domain.SyncUserRequest) (*domain.User, error)
}

// WithUser runs after the Firebase token middleware. It makes sure a users
// row exists for the verified identity, then attaches a request-scoped
// Session (database id, role) to the request context. Every authorization
// check downstream reads that explicit context; there is no ambient state.
func WithUser(userRepo UserEnsurer) gin.HandlerFunc {
	return func(c *gin.Context) {
		fuid := strings.TrimSpace(c.GetString(middleware.CtxFirebaseUID))
		if fuid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := userRepo.EnsureUser(c.Request.Context(), domain.SyncUserRequest{
			FirebaseUID: fuid,
			Email:       c.GetString(middleware.CtxEmail),
		})
		if err != nil {
			// Storage detail stays in the server log; the caller only
			// learns that the sync failed.
			log.Printf("[auth] %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync user"})
			c.Abort()
			return
		}

		session := &Session{
			UserID:      user.ID,
			FirebaseUID: user.FirebaseUID,
			Email:       user.Email,
			Role:        user.Role,
		}
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))
		c.Next()
	}
}
