package mail

import (
	"context"
	"errors"
)

// ErrDelivery marks relay-level failures (connection, authentication,
// protocol errors during send). Handlers map it to a service-unavailable
// response; anything else is an unexpected error.
var ErrDelivery = errors.New("mail delivery failed")

// Message represents a single outbound email
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Sender abstracts mail delivery for injection and testing
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
