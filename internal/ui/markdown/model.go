// Package markdown renders static markdown pages with glamour inside a
// scrollable viewport. A page may be split into tabs.
package markdown

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/ui"
)

// Model is a read-only markdown page.
type Model struct {
	tabs     []model.Tab
	active   int
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a single-page document.
func New(k *keys.KeyMap, body string, width, height int) Model {
	return NewTabbed(k, []model.Tab{{ID: "page", Body: body}}, width, height)
}

// NewTabbed creates a document with one page per tab, the first active.
func NewTabbed(k *keys.KeyMap, tabs []model.Tab, width, height int) Model {
	m := Model{
		tabs:     tabs,
		viewport: viewport.New(width, height),
		keys:     k,
	}
	m.SetSize(width, height)
	return m
}

// ActiveTab returns the id of the visible tab.
func (m Model) ActiveTab() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].ID
}

func (m Model) tabbed() bool { return len(m.tabs) > 1 }

// SetSize updates the page dimensions and re-renders for the new width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	if m.tabbed() {
		m.viewport.Height = max(height-2, 0)
	}
	m.viewport.SetContent(m.render())
}

// GotoTop scrolls to the start of the page.
func (m *Model) GotoTop() {
	m.viewport.GotoTop()
}

func (m Model) render() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return Render(m.tabs[m.active].Body, m.width)
}

// Render converts markdown to styled terminal text wrapped at width. If
// glamour fails the source text is returned unchanged.
func Render(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// Update handles tab switching and scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && m.tabbed() {
		switch {
		case key.Matches(k, m.keys.NextTab):
			m.active = (m.active + 1) % len(m.tabs)
			m.viewport.SetContent(m.render())
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(k, m.keys.PrevTab):
			m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
			m.viewport.SetContent(m.render())
			m.viewport.GotoTop()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the tab bar, if any, and the page.
func (m Model) View() string {
	if !m.tabbed() {
		return m.viewport.View()
	}
	ids := make([]string, len(m.tabs))
	labels := make(map[string]string, len(m.tabs))
	for i, t := range m.tabs {
		ids[i] = t.ID
		labels[t.ID] = t.Label
	}
	bar := ui.Chips(ids, m.ActiveTab(), func(id string) string { return labels[id] })
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", m.viewport.View())
}

// KeyHints returns the status bar hints for the page.
func (m Model) KeyHints() string {
	if m.tabbed() {
		return "[/] tab | j/k scroll | tab section | ? help"
	}
	return "j/k scroll | tab section | ? help"
}

// Capturing reports whether the page is consuming text input. Pages never
// do.
func (m Model) Capturing() bool { return false }
