package mail

import (
	"fmt"
	"time"
)

// ContactMessage builds the fixed-format subject and body for a contact
// form submission. Name and message are expected to be sanitized already.
func ContactMessage(name, email, message string, now time.Time) (subject, body string) {
	subject = fmt.Sprintf("Portfolio Contact: Message from %s", name)
	body = fmt.Sprintf(`New message from your portfolio website:

Name: %s
Email: %s
Date: %s

Message:
%s

---
Sent from samuelrincon.com
`, name, email, now.Format("2006-01-02 15:04:05"), message)
	return subject, body
}
