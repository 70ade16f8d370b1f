// Package detail provides the modal used by the section views to show a
// single entity in full.
package detail

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/theme"
)

// RenderFunc renders the modal body for an item at the given width.
type RenderFunc[T any] func(item T, width int) (title, body string)

// Model is a modal showing the selected item over the section content.
// It closes on esc, on the close key, or on a click outside its box.
type Model[T any] struct {
	Selection[T]

	render   RenderFunc[T]
	viewport viewport.Model
	keys     *keys.KeyMap
	title    string
	width    int
	height   int
}

// New creates a closed modal.
func New[T any](k *keys.KeyMap, render RenderFunc[T], width, height int) Model[T] {
	m := Model[T]{
		render:   render,
		viewport: viewport.New(0, 0),
		keys:     k,
	}
	m.SetSize(width, height)
	return m
}

// Open selects v and shows it from the top.
func (m *Model[T]) Open(v T) {
	m.Select(v)
	m.refresh()
	m.viewport.GotoTop()
}

// Close hides the modal and clears the selection.
func (m *Model[T]) Close() {
	m.Clear()
	m.title = ""
	m.viewport.SetContent("")
}

// SetSize updates the area the modal is centred in.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	w, h := m.boxSize()
	// DetailPanelStyle: border 1 + padding 2 horizontally, border 1 +
	// padding 1 vertically, plus one title row.
	m.viewport.Width = max(w-6, 0)
	m.viewport.Height = max(h-5, 0)
	if m.Active() {
		m.refresh()
	}
}

func (m *Model[T]) refresh() {
	item, ok := m.Current()
	if !ok {
		return
	}
	title, body := m.render(item, m.viewport.Width)
	m.title = title
	m.viewport.SetContent(body)
}

// boxSize returns the outer size of the modal box.
func (m Model[T]) boxSize() (int, int) {
	w := min(m.width-4, 90)
	h := m.height - 2
	return max(w, 0), max(h, 0)
}

// box returns the modal's rectangle in the parent's coordinates.
func (m Model[T]) box() (x, y, w, h int) {
	w, h = m.boxSize()
	return (m.width - w) / 2, (m.height - h) / 2, w, h
}

// Contains reports whether (x, y) falls inside the modal box.
func (m Model[T]) Contains(x, y int) bool {
	bx, by, bw, bh := m.box()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

// Update handles input while the modal is open. It does nothing when
// closed.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	if !m.Active() {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back, m.keys.Close) {
			m.Close()
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if !m.Contains(msg.X, msg.Y) {
				m.Close()
			}
			// Presses inside the box are consumed.
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the modal centred in its area, or nothing when closed.
func (m Model[T]) View() string {
	if !m.Active() {
		return ""
	}
	w, h := m.boxSize()

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.TitleStyle.Render(m.title),
		"  ",
		theme.HelpStyle.Render("[x] close"),
	)
	box := theme.DetailPanelStyle.
		Width(w - 2).
		Height(h - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View()))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
