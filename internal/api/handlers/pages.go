package handlers

import (
	"net/http"

	"github.com/samuelr2112/portfolio/internal/api/dto/common"
	"github.com/samuelr2112/portfolio/internal/content"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the server-side HTML pages
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// Project renders a detail page from the project registry; unknown slugs
// get a 404
func (h *PageHandler) Project(c *gin.Context) {
	slug := c.Param("slug")
	project, ok := content.ProjectBySlug(slug)
	if !ok {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(
			common.ErrCodeNotFound,
			"Project not found",
			nil,
		))
		return
	}

	c.HTML(http.StatusOK, "project.html", gin.H{
		"project": project,
	})
}
