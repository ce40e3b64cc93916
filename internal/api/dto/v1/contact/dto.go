package contact

import (
	"strings"

	"github.com/samuelr2112/portfolio/internal/api/sanitization"
)

// ContactRequest represents a raw contact form submission (form-encoded)
type ContactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required"`
	Message string `form:"message" binding:"required"`
}

// ContactSubmission is the sanitized, validatable form of a submission.
// Name and message have HTML tag markup removed and whitespace trimmed
// before the length constraints apply.
type ContactSubmission struct {
	Name    string `validate:"min=2,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"min=10,max=2000"`
}

// Sanitized converts the raw request into a submission ready for validation
func (r ContactRequest) Sanitized() ContactSubmission {
	return ContactSubmission{
		Name:    sanitization.Clean(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Message: sanitization.Clean(r.Message),
	}
}

// ContactResponse is the public success contract of the contact endpoint
type ContactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
