// Package notifier delivers threshold alerts over email and SMS. Every
// send returns a Delivery result; failures are reported, never swallowed.
package notifier

import "context"

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Delivery is the outcome of one dispatch attempt.
type Delivery struct {
	Channel string
	OK      bool
	Detail  string
}

// Dispatcher sends one formatted alert to a destination. Implementations
// must not return process-level errors for delivery failures; those belong
// in the Delivery so the caller can surface them to the user.
type Dispatcher interface {
	Send(ctx context.Context, destination, subject, body string) Delivery
}
