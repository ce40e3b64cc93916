package mail

import (
	"testing"
	"time"
)

func TestContactMessage(t *testing.T) {
	now := time.Date(2025, 8, 31, 14, 5, 9, 0, time.UTC)

	subject, body := ContactMessage("Jane Doe", "jane@example.com", "Hello, I would like to get in touch with you!", now)

	if subject != "Portfolio Contact: Message from Jane Doe" {
		t.Errorf("unexpected subject: %q", subject)
	}

	want := `New message from your portfolio website:

Name: Jane Doe
Email: jane@example.com
Date: 2025-08-31 14:05:09

Message:
Hello, I would like to get in touch with you!

---
Sent from samuelrincon.com
`
	if body != want {
		t.Errorf("unexpected body:\n%q\nwant:\n%q", body, want)
	}
}
