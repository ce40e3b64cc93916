package handlers

import (
	"net/http"
	"time"

	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/content"

	"github.com/gin-gonic/gin"
)

// SEOHandler serves the crawler-facing artifacts and the metadata API
type SEOHandler struct {
	cfg *config.Config
}

func NewSEOHandler(cfg *config.Config) *SEOHandler {
	return &SEOHandler{cfg: cfg}
}

func (h *SEOHandler) Sitemap(c *gin.Context) {
	xml := content.SitemapXML(h.cfg.BaseURL, time.Now().UTC())
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}

func (h *SEOHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content.RobotsTxt(h.cfg.BaseURL)))
}

func (h *SEOHandler) Metadata(c *gin.Context) {
	c.JSON(http.StatusOK, content.SEOMetadata())
}
