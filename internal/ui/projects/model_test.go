package projects

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/keys"
)

func newModel(t *testing.T) Model {
	t.Helper()
	return New(content.MustLoad(), keys.DefaultKeyMap(), 100, 40)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestStatusFilterCycles(t *testing.T) {
	m := newModel(t)
	require.Equal(t, "all", m.Status())
	require.Len(t, m.Visible(), 1)

	m, _ = m.Update(runes("f"))
	assert.Equal(t, "active", m.Status())
	assert.Len(t, m.Visible(), 1)

	m, _ = m.Update(runes("f"))
	assert.Equal(t, "planning", m.Status())
	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), "No projects match")

	m, _ = m.Update(runes("F"))
	m, _ = m.Update(runes("F"))
	m, _ = m.Update(runes("F"))
	assert.Equal(t, "paused", m.Status())
}

func TestEnterOpensDetail(t *testing.T) {
	m := newModel(t)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "deepdetect-2025", p.ID)

	view := m.View()
	assert.Contains(t, view, "Objectives")
	assert.Contains(t, view, "[x] close")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestFiltersIgnoredWhileDetailOpen(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(runes("f"))
	assert.Equal(t, "all", m.Status())
}

func TestClickOpensCard(t *testing.T) {
	m := newModel(t)

	m, _ = m.Update(click(5, 0))
	_, ok := m.Selected()
	assert.False(t, ok, "filter bar row is not a card")

	m, _ = m.Update(click(5, filterBarHeight+1))
	_, ok = m.Selected()
	require.True(t, ok)

	// Backdrop click closes.
	m, _ = m.Update(click(0, 0))
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestEnterOnEmptyListDoesNothing(t *testing.T) {
	m := newModel(t)
	m, _ = m.Update(runes("f"))
	m, _ = m.Update(runes("f"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestCardShowsSummary(t *testing.T) {
	m := newModel(t)
	view := m.View()
	assert.Contains(t, view, "All Projects")
	assert.Contains(t, view, "DeepDetect")
	assert.Contains(t, view, "5 members")
	assert.Contains(t, view, "+2 more")
	assert.Contains(t, view, "2/4 milestones")
}
