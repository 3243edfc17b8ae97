package ports

import "context"

// Notifier delivers out-of-band messages to customers, such as the handoff
// verification code. Delivery failures must not fail the business operation
// that triggered them; callers log and continue.
type Notifier interface {
	// Send delivers a plain-text message to the given address.
	Send(ctx context.Context, to string, subject string, body string) error
}
