package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
)

// list serves the public portfolio listing, newest first.
func (h *Handler) list(c *gin.Context) {
	projects, err := h.svc.GetAllProjects(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// Mutation endpoints always answer with the uniform result envelope; the
// admin panel branches on its status field, never on HTTP error shapes.

func (h *Handler) create(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": service.StatusError, "message": "Invalid form data"})
		return
	}

	res := h.svc.CreateProject(c.Request.Context(), in)
	c.JSON(http.StatusOK, res)
}

func (h *Handler) edit(c *gin.Context) {
	var in domain.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": service.StatusError, "message": "Invalid form data"})
		return
	}

	res := h.svc.EditProject(c.Request.Context(), c.Param("id"), in)
	c.JSON(http.StatusOK, res)
}

func (h *Handler) delete(c *gin.Context) {
	res := h.svc.DeleteProject(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, res)
}
