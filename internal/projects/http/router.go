package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only portfolio routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

// RegisterAdmin attaches the mutation routes. The caller is expected to wrap
// the group in the authentication and admin middlewares.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.PUT("/:id", h.edit)
	rg.DELETE("/:id", h.delete)
}
