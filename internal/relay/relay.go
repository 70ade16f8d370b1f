// Package relay delivers composed forum messages to an external mail
// service. The site holds no mail infrastructure of its own.
package relay

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhle/deepdetect/internal/model"
)

// Credentials are the three identifiers the EmailJS service requires.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Complete reports whether every identifier is non-blank.
func (c Credentials) Complete() bool {
	return strings.TrimSpace(c.ServiceID) != "" &&
		strings.TrimSpace(c.TemplateID) != "" &&
		strings.TrimSpace(c.PublicKey) != ""
}

// Message is one composed forum post.
type Message struct {
	Subject  string
	Body     string
	Category string

	// FromEmail is the sender shown to the recipient.
	FromEmail string

	// Recipient routes the message. The template decides how it is used.
	Recipient string
}

// TemplateParams returns the parameter map passed to the mail template.
func (m Message) TemplateParams() map[string]string {
	return map[string]string{
		"subject":    m.Subject,
		"message":    m.Body,
		"category":   m.Category,
		"from_email": m.FromEmail,
		"email":      m.Recipient,
	}
}

// Sender delivers a message. Implementations make a single attempt.
type Sender interface {
	Send(ctx context.Context, creds Credentials, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, creds Credentials, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, creds Credentials, msg Message) error {
	return f(ctx, creds, msg)
}

// New builds the sender selected by cfg.Backend.
func New(cfg model.RelayConfig) (Sender, error) {
	switch cfg.Backend {
	case model.RelayEmailJS, "":
		return NewEmailJS(cfg.Endpoint), nil
	case model.RelayOutbox:
		return NewOutbox(cfg.OutboxDir), nil
	default:
		return nil, fmt.Errorf("unknown relay backend %q", cfg.Backend)
	}
}
