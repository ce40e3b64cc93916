package validation

import (
	"regexp"

	"github.com/samuelr2112/portfolio/internal/api/dto/common"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// New returns a validator with the custom validators registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("email", validateEmail)
	return v
}

// validateEmail checks the address against standard email syntax;
// it rejects a missing '@' and an empty or dotless domain
func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// contact form constraint messages, keyed by field then tag
var contactMessages = map[string]map[string]string{
	"Name": {
		"min": "Name must be at least 2 characters long",
		"max": "Name must be less than 100 characters",
	},
	"Email": {
		"required": "A valid email address is required",
		"email":    "A valid email address is required",
	},
	"Message": {
		"min": "Message must be at least 10 characters long",
		"max": "Message must be less than 2000 characters",
	},
}

// FormatContactErrors translates validator errors into field-level messages.
// The first message doubles as the top-level response message.
func FormatContactErrors(err error) (string, []common.ValidationError) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid contact form submission", nil
	}

	var details []common.ValidationError
	for _, e := range validationErrors {
		msg := contactMessages[e.Field()][e.Tag()]
		if msg == "" {
			msg = e.Field() + " is invalid"
		}
		details = append(details, common.ValidationError{
			Field:   e.Field(),
			Message: msg,
		})
	}

	if len(details) == 0 {
		return "Invalid contact form submission", nil
	}
	return details[0].Message, details
}
