package markdown

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
)

func TestRenderKeepsText(t *testing.T) {
	out := Render("# Future Outlook\n\nOats and wheat.", 80)
	assert.Contains(t, out, "Future Outlook")
	assert.Contains(t, out, "Oats and wheat.")
}

func TestTabsCycle(t *testing.T) {
	tabs := content.MustLoad().DetailTabs()
	m := NewTabbed(keys.DefaultKeyMap(), tabs, 80, 20)
	assert.Equal(t, "technology", m.ActiveTab())
	assert.Contains(t, m.View(), "Core Technology")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	assert.Equal(t, "activities", m.ActiveTab())
	assert.Contains(t, m.View(), "Field Trips")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "team-budget", m.ActiveTab())
}

func TestSinglePageHasNoTabBar(t *testing.T) {
	m := New(keys.DefaultKeyMap(), "plain page", 60, 10)
	assert.Equal(t, "page", m.ActiveTab())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	assert.Equal(t, "page", m.ActiveTab())
	assert.NotContains(t, m.KeyHints(), "tab |")
}

func TestResearchPage(t *testing.T) {
	md := ResearchPage(content.MustLoad().Research())
	assert.Contains(t, md, "Computer Vision & AI")
	assert.Contains(t, md, "97.3% accuracy")
	assert.Contains(t, md, "£47K")
	assert.Contains(t, md, "Publications will be listed here")

	md = ResearchPage(model.Research{Publications: []model.Publication{
		{Title: "Blight at scale", Authors: "Tang, T.", Venue: "AgriVision", Year: 2025},
	}})
	assert.Contains(t, md, "Blight at scale")
	assert.NotContains(t, md, "will be listed")
}
