// Package forum implements the discussion form's submission flow:
//
//	idle -> loading -> success | error
//
// success and error are not terminal; the next submit starts over. The
// machine never retries and has no timeout of its own.
package forum

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nhle/deepdetect/internal/relay"
)

// Status is the submission state.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var (
	// ErrEmptyMessage means the message body was blank.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrConfigMissing means a relay identifier is not configured.
	ErrConfigMissing = errors.New("relay configuration missing")

	// ErrDelivery wraps a failure reported by the relay.
	ErrDelivery = errors.New("delivery failed")

	// ErrInFlight is returned when a submit is attempted while loading.
	ErrInFlight = errors.New("submission already in progress")
)

// Fields are the user-editable inputs cleared after a successful post.
type Fields struct {
	TopicTitle   string
	ContactEmail string
	Message      string
}

// Defaults are the fallbacks used while composing.
type Defaults struct {
	Subject         string
	AnonymousSender string
	Recipient       string
}

// Machine is the form state. Field values are addressable so form widgets
// can bind to them directly.
type Machine struct {
	Fields

	// Category is the selected forum category id. It survives a
	// successful post.
	Category string

	status   Status
	err      error
	creds    relay.Credentials
	defaults Defaults
}

// New returns an idle machine with the "all" category selected.
func New(creds relay.Credentials, defaults Defaults) *Machine {
	return &Machine{Category: "all", creds: creds, defaults: defaults}
}

// Status returns the current state.
func (m *Machine) Status() Status { return m.status }

// Err returns the error behind the Error state, or nil.
func (m *Machine) Err() error { return m.err }

// Credentials returns the relay identifiers the machine validates against.
func (m *Machine) Credentials() relay.Credentials { return m.creds }

// Compose builds the outbound message from the current fields.
func (m *Machine) Compose() relay.Message {
	msg := relay.Message{
		Subject:   m.TopicTitle,
		Body:      m.Message,
		Category:  m.Category,
		FromEmail: m.ContactEmail,
		Recipient: m.ContactEmail,
	}
	if msg.Subject == "" {
		msg.Subject = m.defaults.Subject
	}
	if msg.FromEmail == "" {
		msg.FromEmail = m.defaults.AnonymousSender
	}
	if msg.Recipient == "" {
		msg.Recipient = m.defaults.Recipient
	}
	return msg
}

// Begin validates the form and, if it may be sent, moves to Loading and
// returns the composed message. Validation failures move to Error. A
// submit while Loading returns ErrInFlight and changes nothing.
func (m *Machine) Begin() (relay.Message, error) {
	if m.status == Loading {
		return relay.Message{}, ErrInFlight
	}
	if strings.TrimSpace(m.Message) == "" {
		m.fail(ErrEmptyMessage)
		return relay.Message{}, ErrEmptyMessage
	}
	if !m.creds.Complete() {
		m.fail(ErrConfigMissing)
		return relay.Message{}, ErrConfigMissing
	}

	m.status = Loading
	m.err = nil
	return m.Compose(), nil
}

// Complete records the relay's answer for the submission started by
// Begin. It reports false, and does nothing, when no submission is in
// flight.
func (m *Machine) Complete(cause error) bool {
	if m.status != Loading {
		return false
	}
	if cause != nil {
		m.fail(fmt.Errorf("%w: %w", ErrDelivery, cause))
		return true
	}
	m.status = Success
	m.err = nil
	m.Fields = Fields{}
	return true
}

// Submit runs a full submission synchronously against sender.
func (m *Machine) Submit(ctx context.Context, sender relay.Sender) error {
	msg, err := m.Begin()
	if err != nil {
		return err
	}
	m.Complete(sender.Send(ctx, m.creds, msg))
	return m.err
}

func (m *Machine) fail(err error) {
	m.status = Error
	m.err = err
}

// Notice is the status line shown under the form. Relay details never
// reach the user; configuration and delivery problems read the same.
func (m *Machine) Notice() string {
	switch m.status {
	case Loading:
		return "Sending..."
	case Success:
		return "Thank you! Your message has been sent to the research team."
	case Error:
		if errors.Is(m.err, ErrEmptyMessage) {
			return "Please write a message before posting."
		}
		return "Sorry, your message could not be sent. Please try again later."
	}
	return ""
}
