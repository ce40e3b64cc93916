package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/samuelr2112/portfolio/internal/api/dto/common"
	"github.com/samuelr2112/portfolio/internal/api/dto/v1/contact"
	"github.com/samuelr2112/portfolio/internal/api/validation"
	"github.com/samuelr2112/portfolio/internal/config"
	"github.com/samuelr2112/portfolio/internal/logging"
	"github.com/samuelr2112/portfolio/internal/mail"
	"github.com/samuelr2112/portfolio/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// submitTimeout bounds the relay call; the upstream has no explicit
// timeout and would otherwise stall the request worker.
const submitTimeout = 20 * time.Second

type ContactHandler struct {
	cfg      *config.Config
	sender   mail.Sender
	validate *validator.Validate
}

func NewContactHandler(cfg *config.Config, sender mail.Sender) *ContactHandler {
	return &ContactHandler{
		cfg:      cfg,
		sender:   sender,
		validate: validation.New(),
	}
}

// Submit validates a name/email/message triple and relays it by email.
// Validation runs before any network I/O. The success body is the
// endpoint's long-standing public contract and is returned as-is rather
// than wrapped in the API envelope.
func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	if !h.cfg.EmailConfigured() {
		logger.Error("contact submission rejected: EMAIL_PASSWORD not set")
		c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse(
			common.ErrCodeServiceUnavailable,
			"Contact form is temporarily unavailable",
			nil,
		))
		return
	}

	var req contact.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			common.ErrCodeValidation,
			"Name, email and message are required",
			nil,
		))
		return
	}

	sub := req.Sanitized()
	if err := h.validate.Struct(sub); err != nil {
		message, details := validation.FormatContactErrors(err)
		logger.Warn("validation error in contact form: %s", message)
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(
			common.ErrCodeValidation,
			message,
			details,
		))
		return
	}

	subject, body := mail.ContactMessage(sub.Name, sub.Email, sub.Message, time.Now())

	ctx, cancel := context.WithTimeout(c.Request.Context(), submitTimeout)
	defer cancel()

	err := h.sender.Send(ctx, mail.Message{
		From:    h.cfg.EmailFrom,
		To:      h.cfg.EmailTo,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		if errors.Is(err, mail.ErrDelivery) {
			utils.HandleAPIError(c, err, http.StatusServiceUnavailable, common.ErrCodeServiceUnavailable,
				"Unable to send message at this time. Please try again later.")
			return
		}
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer,
			"An unexpected error occurred. Please try emailing directly.")
		return
	}

	logger.Info("contact form submitted successfully from %s", sub.Email)
	c.JSON(http.StatusOK, contact.ContactResponse{
		Status:  "success",
		Message: "Thank you for your message! I'll get back to you soon.",
	})
}
