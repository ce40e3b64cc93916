package handlers

import (
	"net/http"
	"time"

	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"timestamp":        time.Now().Format(time.RFC3339),
		"version":          version.Version,
		"email_configured": h.cfg.EmailConfigured(),
	})
}
