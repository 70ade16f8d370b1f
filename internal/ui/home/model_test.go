package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/nav"
	"github.com/nhle/deepdetect/internal/ui"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestShortcutsNavigate(t *testing.T) {
	m := New(content.MustLoad(), keys.DefaultKeyMap(), 100, 40)

	tests := map[string]nav.Section{"p": nav.Projects, "r": nav.Research}
	for k, want := range tests {
		_, cmd := m.Update(runes(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, ui.NavigateMsg{Section: want}, cmd())
	}
}

func TestViewShowsStats(t *testing.T) {
	m := New(content.MustLoad(), keys.DefaultKeyMap(), 100, 40)
	view := m.View()
	assert.Contains(t, view, "DeepDetect")
	assert.Contains(t, view, "Active Projects")
	assert.Contains(t, view, "65%")
	assert.Contains(t, view, "£48K")
}
