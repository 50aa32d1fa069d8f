// Package email delivers operator notifications through Resend.
package email

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/wealth-planner/backend/internal/application/adapter"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// ResendClient implements adapter.EmailSender on top of the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a client sending as "fromName <fromEmail>".
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// Send delivers msg to all of its recipients in one request.
func (c *ResendClient) Send(ctx context.Context, msg adapter.EmailMessage) (string, error) {
	if len(msg.To) == 0 {
		return "", nil
	}

	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Tags:    resendTags(msg.Tags),
	})
	if err != nil {
		return "", classifySendError(err)
	}
	return resp.Id, nil
}

// resendTags converts tags to the provider format in a stable order.
func resendTags(tags map[string]string) []resend.Tag {
	if len(tags) == 0 {
		return nil
	}
	out := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		out = append(out, resend.Tag{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// permanentMarkers identify provider rejections that a retry cannot fix.
// Rate limits (429) and server errors (5xx) are left out on purpose.
var permanentMarkers = []string{"400", "401", "403", "422", "unauthorized", "forbidden", "validation", "invalid"}

// classifySendError wraps a provider error as a permanent or temporary EmailError.
func classifySendError(err error) error {
	lower := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(lower, marker) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"email rejected by provider",
				fmt.Errorf("%w: %v", domainerror.ErrPermanentEmailFailure, err),
			)
		}
	}
	return domainerror.NewEmailError(
		domainerror.ErrCodeTemporaryEmailFailure,
		"email provider unavailable",
		fmt.Errorf("%w: %v", domainerror.ErrTemporaryEmailFailure, err),
	)
}

// MockEmailSender keeps messages in memory. It stands in for Resend when no
// API key is configured and in tests.
type MockEmailSender struct {
	mu       sync.Mutex
	messages []adapter.EmailMessage
	// FailWith makes every Send fail with the classified form of this error.
	FailWith error
}

// NewMockEmailSender creates an empty mock sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements adapter.EmailSender.
func (m *MockEmailSender) Send(_ context.Context, msg adapter.EmailMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return "", classifySendError(m.FailWith)
	}
	m.messages = append(m.messages, msg)
	return fmt.Sprintf("mock-%d", len(m.messages)), nil
}

// Sent returns a copy of the delivered messages.
func (m *MockEmailSender) Sent() []adapter.EmailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.EmailMessage(nil), m.messages...)
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
