package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/mail"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls []mail.Message
	err   error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) error {
	f.calls = append(f.calls, msg)
	return f.err
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func contactTestServer(cfg *config.Config, sender mail.Sender) *gin.Engine {
	router := gin.New()
	router.POST("/api/contact", NewContactHandler(cfg, sender).Submit)
	return router
}

func configuredContactConfig() *config.Config {
	return &config.Config{
		EmailPassword: "app-password",
		EmailFrom:     "from@example.com",
		EmailTo:       "to@example.com",
	}
}

func postContact(router *gin.Engine, name, email, message string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("message", message)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestContactSubmitSuccess(t *testing.T) {
	sender := &fakeSender{}
	router := contactTestServer(configuredContactConfig(), sender)

	w := postContact(router, "Jane Doe", "jane@example.com", "Hello, I would like to get in touch with you!")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t,
		`{"status":"success","message":"Thank you for your message! I'll get back to you soon."}`,
		w.Body.String())

	require.Len(t, sender.calls, 1)
	msg := sender.calls[0]
	assert.Equal(t, "from@example.com", msg.From)
	assert.Equal(t, "to@example.com", msg.To)
	assert.Equal(t, "Portfolio Contact: Message from Jane Doe", msg.Subject)
	assert.Contains(t, msg.Body, "Name: Jane Doe")
	assert.Contains(t, msg.Body, "Email: jane@example.com")
	assert.Contains(t, msg.Body, "Hello, I would like to get in touch with you!")
	assert.Contains(t, msg.Body, "Sent from samuelrincon.com")
}

func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name          string
		formName      string
		formEmail     string
		formMessage   string
		wantInMessage string
	}{
		{"name too short", "A", "jane@example.com", "Hello, this is a valid message.", "Name must be at least 2 characters"},
		{"name whitespace only", "   ", "jane@example.com", "Hello, this is a valid message.", "Name"},
		{"name too long", strings.Repeat("a", 101), "jane@example.com", "Hello, this is a valid message.", "Name must be less than 100 characters"},
		{"name tags only", "<b></b>", "jane@example.com", "Hello, this is a valid message.", "Name"},
		{"message too short", "Jane Doe", "jane@example.com", "short", "Message must be at least 10 characters"},
		{"message too long", "Jane Doe", "jane@example.com", strings.Repeat("m", 2001), "Message must be less than 2000 characters"},
		{"email missing at", "Jane Doe", "janeexample.com", "Hello, this is a valid message.", "email"},
		{"email empty domain", "Jane Doe", "jane@", "Hello, this is a valid message.", "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			router := contactTestServer(configuredContactConfig(), sender)

			w := postContact(router, tt.formName, tt.formEmail, tt.formMessage)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
			assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.wantInMessage))
			assert.Empty(t, sender.calls, "no mail may be sent on validation failure")
		})
	}
}

func TestContactSubmitStripsTags(t *testing.T) {
	sender := &fakeSender{}
	router := contactTestServer(configuredContactConfig(), sender)

	// "<b>Al</b>" sanitizes to "Al" (length 2) and must pass
	w := postContact(router, "<b>Al</b>", "al@example.com", "<p>Hello, I would like to talk.</p>")

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.calls, 1)
	assert.Equal(t, "Portfolio Contact: Message from Al", sender.calls[0].Subject)
	assert.Contains(t, sender.calls[0].Body, "Name: Al")
	assert.Contains(t, sender.calls[0].Body, "Hello, I would like to talk.")
	assert.NotContains(t, sender.calls[0].Body, "<p>")
}

func TestContactSubmitMissingFields(t *testing.T) {
	sender := &fakeSender{}
	router := contactTestServer(configuredContactConfig(), sender)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("name=Jane+Doe"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, sender.calls)
}

func TestContactSubmitNotConfigured(t *testing.T) {
	sender := &fakeSender{}
	cfg := configuredContactConfig()
	cfg.EmailPassword = ""
	router := contactTestServer(cfg, sender)

	w := postContact(router, "Jane Doe", "jane@example.com", "Hello, I would like to get in touch with you!")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Contact form is temporarily unavailable")
	assert.Empty(t, sender.calls, "no network call may be attempted without a credential")
}

func TestContactSubmitDeliveryFailure(t *testing.T) {
	// release mode so the response behaves as in production: generic
	// message only, no error detail
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	sender := &fakeSender{err: fmt.Errorf("%w: authentication failed", mail.ErrDelivery)}
	router := contactTestServer(configuredContactConfig(), sender)

	w := postContact(router, "Jane Doe", "jane@example.com", "Hello, I would like to get in touch with you!")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to send message at this time")
	// relay detail must not leak to the caller
	assert.NotContains(t, w.Body.String(), "authentication failed")
}

func TestContactSubmitUnexpectedFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("boom")}
	router := contactTestServer(configuredContactConfig(), sender)

	w := postContact(router, "Jane Doe", "jane@example.com", "Hello, I would like to get in touch with you!")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An unexpected error occurred")
}
