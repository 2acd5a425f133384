package http

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
)

// Sender delivers a validated contact message.
type Sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

type Handler struct {
	mailer Sender
}

func New(mailer Sender) *Handler {
	return &Handler{mailer: mailer}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.send)
}

func (h *Handler) send(c *gin.Context) {
	var msg domain.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid form data"})
		return
	}

	if violations := msg.Validate(); len(violations) > 0 {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Invalid form data", "fields": violations})
		return
	}

	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		log.Printf("[contact] delivery failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Message sent successfully"})
}
