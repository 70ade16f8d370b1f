package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/deepdetect/internal/nav"
)

// executeCommand handles a command string from the command palette.
// Anything that is not a built-in command is looked up as a section.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "quit", "q":
		return tea.Quit
	case "help":
		m.overlay = OverlayHelp
		return nil
	case "top":
		m.gotoTop(m.nav.Active())
		return nil
	}

	if s, ok := nav.Lookup(cmd); ok {
		m.selectSection(string(s))
		return nil
	}
	m.flash = "unknown command: " + cmd
	return nil
}
