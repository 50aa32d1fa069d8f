package adapter

import "context"

// EmailMessage is a rendered email ready for delivery.
type EmailMessage struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	// Tags are attached to the message on the provider side for filtering.
	Tags map[string]string
}

// EmailSender delivers rendered emails through an external provider.
type EmailSender interface {
	// Send delivers msg and returns the provider's message id.
	Send(ctx context.Context, msg EmailMessage) (messageID string, err error)
}
