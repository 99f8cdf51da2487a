package mailer

import (
	"context"
	"fmt"
)

// Message is one outbound HTML email.
type Message struct {
	ToEmail  string
	ToName   string
	Subject  string
	HTMLBody string
}

// Mailer delivers a single message synchronously. Implementations make one
// attempt; retry policy belongs to the caller (and here the caller never
// retries).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// DeliveryError is returned when the provider answered but refused the send.
// Detail carries the raw provider response body for the error envelope.
type DeliveryError struct {
	StatusCode int
	Detail     string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed with status %d", e.StatusCode)
}
