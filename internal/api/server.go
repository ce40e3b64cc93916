package api

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/samuelr2112/portfolio/internal/api/handlers"
	"github.com/samuelr2112/portfolio/internal/api/middleware"
	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/logging"
	"github.com/samuelr2112/portfolio/internal/mail"

	"github.com/gin-gonic/gin"
)

// contact form quota: 5 submissions per client address per rolling minute
const (
	contactRateLimit  = 5
	contactRateWindow = time.Minute
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

func NewServer(cfg *config.Config, sender mail.Sender) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logging.GetLogger()))
	// security headers first so even aborted preflight responses carry them
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.AllowedOrigins()))

	router.LoadHTMLGlob(filepath.Join(cfg.WebRoot, "templates", "*.html"))
	router.Static("/static", filepath.Join(cfg.WebRoot, "static"))
	router.Static("/images", filepath.Join(cfg.WebRoot, "images"))

	server := &Server{
		router: router,
		cfg:    cfg,
	}
	server.registerRoutes(sender)

	return server
}

func (s *Server) registerRoutes(sender mail.Sender) {
	pages := handlers.NewPageHandler()
	projects := handlers.NewProjectsHandler()
	resume := handlers.NewResumeHandler(s.cfg)
	seo := handlers.NewSEOHandler(s.cfg)
	health := handlers.NewHealthHandler(s.cfg)
	contact := handlers.NewContactHandler(s.cfg, sender)

	// HTML pages
	s.router.GET("/", pages.Home)
	s.router.GET("/projects/:slug", pages.Project)

	// Resume download
	s.router.GET("/resume/download", resume.Download)

	// Read-only JSON APIs
	apiGroup := s.router.Group("/api")
	{
		apiGroup.GET("/projects", projects.List)
		apiGroup.GET("/resume", resume.Get)
		apiGroup.GET("/metadata", seo.Metadata)

		// Only the contact route is rate limited
		limiter := middleware.NewClientRateLimiter(contactRateLimit, contactRateWindow)
		apiGroup.POST("/contact", middleware.RateLimit(limiter), contact.Submit)
	}

	// Operational and SEO artifacts
	s.router.GET("/health", health.Check)
	s.router.GET("/sitemap.xml", seo.Sitemap)
	s.router.GET("/robots.txt", seo.Robots)
}

// Handler exposes the router for the HTTP server and for tests
func (s *Server) Handler() http.Handler {
	return s.router
}
