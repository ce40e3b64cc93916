package validation

import (
	"strings"
	"testing"

	"github.com/samuelr2112/portfolio/internal/api/dto/v1/contact"
)

func validSubmission() contact.ContactSubmission {
	return contact.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, I would like to get in touch with you!",
	}
}

func TestContactSubmissionValidation(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		mutate  func(*contact.ContactSubmission)
		wantErr bool
	}{
		{"valid", func(s *contact.ContactSubmission) {}, false},
		{"name too short", func(s *contact.ContactSubmission) { s.Name = "A" }, true},
		{"name empty", func(s *contact.ContactSubmission) { s.Name = "" }, true},
		{"name at max", func(s *contact.ContactSubmission) { s.Name = strings.Repeat("a", 100) }, false},
		{"name over max", func(s *contact.ContactSubmission) { s.Name = strings.Repeat("a", 101) }, true},
		{"message too short", func(s *contact.ContactSubmission) { s.Message = "too short" }, true},
		{"message at min", func(s *contact.ContactSubmission) { s.Message = strings.Repeat("m", 10) }, false},
		{"message over max", func(s *contact.ContactSubmission) { s.Message = strings.Repeat("m", 2001) }, true},
		{"email missing at", func(s *contact.ContactSubmission) { s.Email = "janeexample.com" }, true},
		{"email empty domain", func(s *contact.ContactSubmission) { s.Email = "jane@" }, true},
		{"email dotless domain", func(s *contact.ContactSubmission) { s.Email = "jane@example" }, true},
		{"email empty", func(s *contact.ContactSubmission) { s.Email = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			err := v.Struct(sub)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct(%+v) error = %v, wantErr %v", sub, err, tt.wantErr)
			}
		})
	}
}

func TestFormatContactErrors(t *testing.T) {
	v := New()

	sub := validSubmission()
	sub.Name = "A"
	err := v.Struct(sub)
	if err == nil {
		t.Fatal("expected validation error")
	}

	message, details := FormatContactErrors(err)
	if message != "Name must be at least 2 characters long" {
		t.Errorf("unexpected message: %q", message)
	}
	if len(details) != 1 || details[0].Field != "Name" {
		t.Errorf("unexpected details: %+v", details)
	}
}
