package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth/domain"
	"github.com/devfolio/portfolio-backend/internal/auth/middleware"
)

// GetProfile returns the current user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	firebaseUID := c.GetString(middleware.CtxFirebaseUID)
	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.authService.GetUserByFirebaseUID(c.Request.Context(), firebaseUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SyncUser syncs Firebase user data to PostgreSQL.
// Called after sign-in to make sure the user row exists. Accepts an optional
// JSON body with display_name and photo_url from the client's auth profile.
func (h *Handler) SyncUser(c *gin.Context) {
	firebaseUID := c.GetString(middleware.CtxFirebaseUID)
	email := c.GetString(middleware.CtxEmail)

	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var body struct {
		DisplayName *string `json:"display_name,omitempty"`
		PhotoURL    *string `json:"photo_url,omitempty"`
	}

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	user, err := h.authService.SyncUser(c.Request.Context(), domain.SyncUserRequest{
		FirebaseUID: firebaseUID,
		Email:       email,
		DisplayName: body.DisplayName,
		PhotoURL:    body.PhotoURL,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
