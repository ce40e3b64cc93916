package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samuelr2112/portfolio/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resumeTestServer(cfg *config.Config) *gin.Engine {
	h := NewResumeHandler(cfg)
	router := gin.New()
	router.GET("/api/resume", h.Get)
	router.GET("/resume/download", h.Download)
	return router
}

func TestResumeDownload(t *testing.T) {
	resumePath := filepath.Join(t.TempDir(), "resumeV2.pdf")
	require.NoError(t, os.WriteFile(resumePath, []byte("%PDF-1.4 test"), 0644))

	router := resumeTestServer(&config.Config{ResumeFile: resumePath})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resume/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Samuel_Rincon_Resume.pdf")
	assert.Contains(t, w.Header().Get("Content-Type"), "application/pdf")
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
}

func TestResumeDownloadMissingFile(t *testing.T) {
	router := resumeTestServer(&config.Config{
		ResumeFile: filepath.Join(t.TempDir(), "does-not-exist.pdf"),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resume/download", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Resume not found")
}

func TestResumeAPI(t *testing.T) {
	router := resumeTestServer(&config.Config{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/resume", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "Samuel Rincon", doc["name"])
	assert.Equal(t, "Software Engineer | Backend Developer", doc["title"])

	lastUpdated, ok := doc["last_updated"].(string)
	require.True(t, ok, "last_updated must be present")
	_, err := time.Parse(time.RFC3339, lastUpdated)
	assert.NoError(t, err, "last_updated must be RFC 3339")
}
