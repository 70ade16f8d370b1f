package forum

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/relay"
)

var (
	configured = relay.Credentials{ServiceID: "service", TemplateID: "template", PublicKey: "key"}
	defaults   = Defaults{
		Subject:         "New Discussion Post",
		AnonymousSender: "anonymous@deepdetect.community",
		Recipient:       "met57@aber.ac.uk",
	}
)

type stubSender struct {
	calls []relay.Message
	creds []relay.Credentials
	err   error
}

func (s *stubSender) Send(_ context.Context, creds relay.Credentials, msg relay.Message) error {
	s.calls = append(s.calls, msg)
	s.creds = append(s.creds, creds)
	return s.err
}

func TestEmptyMessageMakesNoCall(t *testing.T) {
	m := New(configured, defaults)
	m.TopicTitle = "Blight on my crop"
	m.Message = "   \n\t"
	sender := &stubSender{}

	err := m.Submit(context.Background(), sender)

	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, Error, m.Status())
	assert.Empty(t, sender.calls)
	assert.Equal(t, "Blight on my crop", m.TopicTitle)
}

func TestMissingConfigMakesNoCall(t *testing.T) {
	for _, creds := range []relay.Credentials{
		{},
		{ServiceID: "s", TemplateID: "t"},
		{ServiceID: "s", PublicKey: "k"},
		{TemplateID: "t", PublicKey: "k"},
	} {
		m := New(creds, defaults)
		m.Message = "hello"
		sender := &stubSender{}

		err := m.Submit(context.Background(), sender)

		assert.ErrorIs(t, err, ErrConfigMissing)
		assert.Equal(t, Error, m.Status())
		assert.Empty(t, sender.calls)
	}
}

func TestSuccessClearsFieldsKeepsCategory(t *testing.T) {
	m := New(configured, defaults)
	m.Category = "disease"
	m.TopicTitle = "Late blight"
	m.ContactEmail = "farmer@example.com"
	m.Message = "Lesions on lower leaves"
	sender := &stubSender{}

	require.NoError(t, m.Submit(context.Background(), sender))

	require.Len(t, sender.calls, 1)
	assert.Equal(t, relay.Message{
		Subject:   "Late blight",
		Body:      "Lesions on lower leaves",
		Category:  "disease",
		FromEmail: "farmer@example.com",
		Recipient: "farmer@example.com",
	}, sender.calls[0])
	assert.Equal(t, configured, sender.creds[0])

	assert.Equal(t, Success, m.Status())
	assert.Equal(t, Fields{}, m.Fields)
	assert.Equal(t, "disease", m.Category)
	assert.NoError(t, m.Err())
}

func TestFailureKeepsFields(t *testing.T) {
	m := New(configured, defaults)
	m.TopicTitle = "Topic"
	m.ContactEmail = "me@example.com"
	m.Message = "Body"
	cause := &relay.StatusError{Code: 400, Body: "bad key"}
	sender := &stubSender{err: cause}

	err := m.Submit(context.Background(), sender)

	assert.ErrorIs(t, err, ErrDelivery)
	var se *relay.StatusError
	assert.True(t, errors.As(err, &se), "cause stays reachable for logging")
	assert.Len(t, sender.calls, 1)
	assert.Equal(t, Error, m.Status())
	assert.Equal(t, Fields{TopicTitle: "Topic", ContactEmail: "me@example.com", Message: "Body"}, m.Fields)
	assert.NotContains(t, m.Notice(), "bad key")
}

func TestDefaultsApplied(t *testing.T) {
	m := New(configured, defaults)
	m.Message = "Anonymous question"
	sender := &stubSender{}

	require.NoError(t, m.Submit(context.Background(), sender))

	got := sender.calls[0]
	assert.Equal(t, "New Discussion Post", got.Subject)
	assert.Equal(t, "anonymous@deepdetect.community", got.FromEmail)
	assert.Equal(t, "met57@aber.ac.uk", got.Recipient)
	assert.Equal(t, "all", got.Category)
}

func TestSubmitWhileLoadingIsRejected(t *testing.T) {
	m := New(configured, defaults)
	m.Message = "first"

	_, err := m.Begin()
	require.NoError(t, err)
	require.Equal(t, Loading, m.Status())

	_, err = m.Begin()
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, Loading, m.Status())
	assert.Equal(t, "first", m.Message)
}

func TestCompleteWithoutBeginIsIgnored(t *testing.T) {
	m := New(configured, defaults)
	assert.False(t, m.Complete(nil))
	assert.Equal(t, Idle, m.Status())
}

func TestMachineIsReusable(t *testing.T) {
	m := New(configured, defaults)
	sender := &stubSender{err: errors.New("network down")}

	m.Message = "retry me"
	assert.Error(t, m.Submit(context.Background(), sender))
	assert.Equal(t, Error, m.Status())

	sender.err = nil
	assert.NoError(t, m.Submit(context.Background(), sender))
	assert.Equal(t, Success, m.Status())
	assert.Len(t, sender.calls, 2)

	m.Message = "another"
	assert.NoError(t, m.Submit(context.Background(), sender))
	assert.Len(t, sender.calls, 3)
}

func TestNotice(t *testing.T) {
	m := New(relay.Credentials{}, defaults)
	assert.Empty(t, m.Notice())

	m.Message = "x"
	_, _ = m.Begin()
	configNotice := m.Notice()

	m = New(configured, defaults)
	m.Message = "x"
	_ = m.Submit(context.Background(), &stubSender{err: errors.New("boom")})
	assert.Equal(t, configNotice, m.Notice(), "config and delivery failures read the same")

	m = New(configured, defaults)
	_, _ = m.Begin()
	assert.Contains(t, m.Notice(), "write a message")
}
