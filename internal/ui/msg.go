package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/deepdetect/internal/nav"
	"github.com/nhle/deepdetect/internal/relay"
)

// NavigateMsg asks the shell to switch to another section.
type NavigateMsg struct {
	Section nav.Section
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(s nav.Section) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Section: s} }
}

// SubmitMsg asks the shell to relay a forum post.
type SubmitMsg struct {
	Message     relay.Message
	Credentials relay.Credentials
}

// DeliveredMsg carries the relay's answer for the submission identified
// by Ticket. Err is nil on success.
type DeliveredMsg struct {
	Ticket int
	Err    error
}
