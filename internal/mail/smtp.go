package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
)

const defaultTimeout = 15 * time.Second

// SMTPConfig holds relay settings for the outbound mailer
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPSender delivers mail over an authenticated implicit-TLS SMTP session.
// Outbound sends are throttled to stay within relay provider limits.
type SMTPSender struct {
	cfg      SMTPConfig
	outbound *rate.Limiter
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &SMTPSender{
		cfg:      cfg,
		outbound: rate.NewLimiter(rate.Every(time.Second), 5),
	}
}

// Send composes and delivers the message. No retry on failure: the caller
// reports the outcome and the user decides whether to try again.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid to address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := s.outbound.Wait(ctx); err != nil {
		return fmt.Errorf("%w: outbound throttle: %v", ErrDelivery, err)
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthLogin),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	return nil
}
