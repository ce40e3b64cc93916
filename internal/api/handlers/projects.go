package handlers

import (
	"net/http"

	"github.com/samuelr2112/portfolio/internal/content"

	"github.com/gin-gonic/gin"
)

// ProjectsHandler serves the read-only project API
type ProjectsHandler struct{}

func NewProjectsHandler() *ProjectsHandler {
	return &ProjectsHandler{}
}

func (h *ProjectsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"projects": content.Projects(),
	})
}
