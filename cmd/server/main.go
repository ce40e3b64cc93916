package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samuelr2112/portfolio/internal/api"
	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/logging"
	"github.com/samuelr2112/portfolio/internal/mail"
	"github.com/samuelr2112/portfolio/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting portfolio server %s in %s mode", version.Version, cfg.Environment)
	logger.Debug("Build info: %+v", version.GetBuildInfo())

	if !cfg.EmailConfigured() {
		logger.Warn("EMAIL_PASSWORD not set - contact form will not work")
	}

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUsername,
		Password: cfg.EmailPassword,
	})

	server := api.NewServer(cfg, sender)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Handler(),
	}

	go func() {
		logger.Info("Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown: %v", err)
	}
}
