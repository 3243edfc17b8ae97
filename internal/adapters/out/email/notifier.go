// Package email delivers customer notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPNotifier implements the Notifier port on top of go-mail.
// Plain-text messages only; the single message the core sends today is the
// handoff verification code.
type SMTPNotifier struct {
	client *mail.Client
	from   string
}

// NewSMTPNotifier creates a notifier connected to the given SMTP relay.
// Credentials may be empty for relays that accept unauthenticated mail,
// such as a local test server.
func NewSMTPNotifier(host string, port int, username, password, from string) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(port),
	}
	if username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPNotifier{
		client: client,
		from:   from,
	}, nil
}

// Send delivers a plain-text message to the given address.
func (n *SMTPNotifier) Send(ctx context.Context, to string, subject string, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return n.client.DialAndSendWithContext(ctx, msg)
}
