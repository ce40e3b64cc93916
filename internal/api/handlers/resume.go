package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/samuelr2112/portfolio/internal/api/dto/common"
	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/content"

	"github.com/gin-gonic/gin"
)

const resumeDownloadName = "Samuel_Rincon_Resume.pdf"

type ResumeHandler struct {
	cfg *config.Config
}

func NewResumeHandler(cfg *config.Config) *ResumeHandler {
	return &ResumeHandler{cfg: cfg}
}

// Get serves the resume document with a per-request last_updated stamp
func (h *ResumeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, content.ResumeDocument(time.Now()))
}

// Download serves the resume PDF as an attachment, 404 when missing
func (h *ResumeHandler) Download(c *gin.Context) {
	if _, err := os.Stat(h.cfg.ResumeFile); err != nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(
			common.ErrCodeNotFound,
			"Resume not found",
			nil,
		))
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(h.cfg.ResumeFile, resumeDownloadName)
}
