package forum

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/forum"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/relay"
	"github.com/nhle/deepdetect/internal/ui"
)

var configured = relay.Credentials{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}

var defaults = forum.Defaults{
	Subject:         "New Discussion Post",
	AnonymousSender: "anonymous@deepdetect.community",
	Recipient:       "team@example.org",
}

func newModel(t *testing.T, creds relay.Credentials) Model {
	t.Helper()
	return New(content.MustLoad(), keys.DefaultKeyMap(), creds, defaults, 100, 40)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// submitFrom runs a command and returns the SubmitMsg it produced, if any.
func submitFrom(t *testing.T, cmd tea.Cmd) (ui.SubmitMsg, bool) {
	t.Helper()
	if cmd == nil {
		return ui.SubmitMsg{}, false
	}
	msgs := []tea.Msg{cmd()}
	if batch, ok := msgs[0].(tea.BatchMsg); ok {
		msgs = msgs[:0]
		for _, c := range batch {
			if c != nil {
				msgs = append(msgs, c())
			}
		}
	}
	for _, msg := range msgs {
		if s, ok := msg.(ui.SubmitMsg); ok {
			return s, true
		}
	}
	return ui.SubmitMsg{}, false
}

func TestIdleView(t *testing.T) {
	m := newModel(t, configured)
	view := m.View()
	assert.Contains(t, view, "All Topics")
	assert.Contains(t, view, "[n] Start a new discussion")
	assert.Contains(t, view, "No discussions yet")
	assert.False(t, m.Capturing())
}

func TestCategoryCycle(t *testing.T) {
	m := newModel(t, configured)
	m, _ = m.Update(runes("f"))
	assert.Equal(t, "disease", m.Machine().Category)
	m, _ = m.Update(runes("F"))
	m, _ = m.Update(runes("F"))
	assert.Equal(t, "sustainable", m.Machine().Category)
	assert.Empty(t, m.Visible())
}

func TestComposeAndCancel(t *testing.T) {
	m := newModel(t, configured)
	m, _ = m.Update(runes("n"))
	require.True(t, m.Composing())
	assert.True(t, m.Capturing())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Composing())
}

func TestEmptyMessageDoesNotSubmit(t *testing.T) {
	m := newModel(t, configured)
	m, _ = m.Update(runes("n"))
	m.Machine().TopicTitle = "Blight question"

	m, cmd := m.begin()
	_, sent := submitFrom(t, cmd)
	assert.False(t, sent)
	assert.Equal(t, forum.Error, m.Machine().Status())
	assert.Contains(t, m.View(), "Please write a message before posting.")
	assert.Equal(t, "Blight question", m.Machine().TopicTitle)
}

func TestMissingConfigDoesNotSubmit(t *testing.T) {
	m := newModel(t, relay.Credentials{ServiceID: "svc"})
	m.Machine().Message = "Hello"

	m, cmd := m.begin()
	_, sent := submitFrom(t, cmd)
	assert.False(t, sent)
	assert.ErrorIs(t, m.Machine().Err(), forum.ErrConfigMissing)
	assert.Contains(t, m.View(), "could not be sent")
}

func TestSubmitAndDeliver(t *testing.T) {
	m := newModel(t, configured)
	m, _ = m.Update(runes("n"))
	m.Machine().TopicTitle = "Early blight"
	m.Machine().Message = "Seeing spots on leaves."
	m.Machine().Category = "disease"

	m, cmd := m.begin()
	submit, sent := submitFrom(t, cmd)
	require.True(t, sent)
	assert.Equal(t, configured, submit.Credentials)
	assert.Equal(t, relay.Message{
		Subject:   "Early blight",
		Body:      "Seeing spots on leaves.",
		Category:  "disease",
		FromEmail: "anonymous@deepdetect.community",
		Recipient: "team@example.org",
	}, submit.Message)
	assert.Equal(t, forum.Loading, m.Machine().Status())
	assert.Contains(t, m.View(), "Sending...")

	// Input is ignored while the post is in flight.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Composing())

	m, _ = m.Update(ui.DeliveredMsg{Ticket: 1})
	assert.Equal(t, forum.Success, m.Machine().Status())
	assert.Empty(t, m.Machine().Message)
	assert.Empty(t, m.Machine().TopicTitle)
	assert.Equal(t, "disease", m.Machine().Category)
	assert.Contains(t, m.View(), "Thank you!")
}

func TestDeliveryFailureKeepsFields(t *testing.T) {
	m := newModel(t, configured)
	m.Machine().Message = "Hello"

	m, _ = m.begin()
	m, _ = m.Update(ui.DeliveredMsg{Ticket: 1, Err: errors.New("status 500")})
	assert.Equal(t, forum.Error, m.Machine().Status())
	assert.ErrorIs(t, m.Machine().Err(), forum.ErrDelivery)
	assert.Equal(t, "Hello", m.Machine().Message)
	assert.NotContains(t, m.View(), "status 500")
}

func TestDeliveredWithoutSubmitIsIgnored(t *testing.T) {
	m := newModel(t, configured)
	m, _ = m.Update(ui.DeliveredMsg{Ticket: 3})
	assert.Equal(t, forum.Idle, m.Machine().Status())
}
