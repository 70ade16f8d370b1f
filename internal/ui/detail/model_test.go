package detail

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/keys"
)

func renderString(s string, _ int) (string, string) { return "Title " + s, "Body of " + s }

func TestSelection(t *testing.T) {
	var s Selection[string]
	_, ok := s.Current()
	assert.False(t, ok)

	s.Select("a")
	s.Select("b")
	v, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "b", v, "select replaces")

	s.Clear()
	v, ok = s.Current()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func openModal() Model[string] {
	m := New[string](keys.DefaultKeyMap(), renderString, 100, 30)
	m.Open("project")
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModalView(t *testing.T) {
	m := openModal()
	view := m.View()
	assert.Contains(t, view, "Title project")
	assert.Contains(t, view, "Body of project")

	m.Close()
	assert.Empty(t, m.View())
}

func TestModalClosesOnEscAndCloseKey(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("x")},
	} {
		m := openModal()
		m, _ = m.Update(k)
		assert.False(t, m.Active(), k.String())
	}
}

func TestModalBackdropClickCloses(t *testing.T) {
	m := openModal()
	m, _ = m.Update(press(0, 0))
	assert.False(t, m.Active())
}

func TestModalClickInsideIsConsumed(t *testing.T) {
	m := openModal()
	x, y, w, h := m.box()
	require.True(t, m.Contains(x+w/2, y+h/2))

	m, _ = m.Update(press(x+w/2, y+h/2))
	assert.True(t, m.Active())

	m, _ = m.Update(press(x+w-1, y+h-1))
	assert.True(t, m.Active(), "bottom-right corner is inside")
	m, _ = m.Update(press(x+w, y+h-1))
	assert.False(t, m.Active(), "one cell right of the box is backdrop")
}

func TestModalIgnoresInputWhenClosed(t *testing.T) {
	m := New[string](keys.DefaultKeyMap(), renderString, 100, 30)
	m, cmd := m.Update(press(0, 0))
	assert.Nil(t, cmd)
	assert.False(t, m.Active())
}
