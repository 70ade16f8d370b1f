// Package feed is the project activity timeline: every project update
// plus the site announcements, newest first, with a type filter and
// session likes.
package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/filter"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/reaction"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
)

// TypeFilters are the options of the type filter bar.
var TypeFilters = []string{
	filter.All,
	string(model.UpdateMilestone),
	string(model.UpdateProgress),
	string(model.UpdateResearch),
	string(model.UpdateAnnouncement),
}

const headerHeight = 2

var title = cases.Title(language.English)

// Model is the feed section view.
type Model struct {
	content  *content.Store
	keys     *keys.KeyMap
	kind     string
	visible  []model.FeedEntry
	cursor   int
	likes    reaction.Set
	viewport viewport.Model

	// offsets[i] is the first viewport line of entry i; the final
	// element is the total line count.
	offsets []int

	width  int
	height int
}

// New creates the feed view showing every entry.
func New(c *content.Store, k *keys.KeyMap, width, height int) Model {
	m := Model{
		content:  c,
		keys:     k,
		kind:     filter.All,
		viewport: viewport.New(width, height-headerHeight),
	}
	m.SetSize(width, height)
	m.apply()
	return m
}

// Kind returns the active type filter key.
func (m Model) Kind() string { return m.kind }

// Visible returns the entries passing the type filter, newest first.
func (m Model) Visible() []model.FeedEntry { return m.visible }

// Likes returns the displayed like count of the entry with the given id.
func (m Model) Likes(e model.FeedEntry) int {
	p := e.Post()
	return m.likes.Count(p.ID, p.Likes)
}

func (m *Model) apply() {
	m.visible = filter.Category(m.content.Timeline(), m.kind, func(e model.FeedEntry) model.UpdateType {
		return e.Post().Type
	})
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextFilter):
			m.kind = ui.Cycle(TypeFilters, m.kind, 1)
			m.apply()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.kind = ui.Cycle(TypeFilters, m.kind, -1)
			m.apply()
			return m, nil
		case key.Matches(msg, m.keys.Like):
			if len(m.visible) > 0 {
				m.likes.Toggle(m.visible[m.cursor].Post().ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.entryAt(msg.Y); ok {
				m.cursor = i
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) entryAt(y int) (int, bool) {
	if y < headerHeight {
		return 0, false
	}
	line := y - headerHeight + m.viewport.YOffset
	for i := range m.visible {
		if line >= m.offsets[i] && line < m.offsets[i+1] {
			return i, true
		}
	}
	return 0, false
}

// refresh redraws the posts and keeps the cursor in view.
func (m *Model) refresh() {
	m.offsets = make([]int, 0, len(m.visible)+1)
	var posts []string
	line := 0
	for i, e := range m.visible {
		post := m.renderEntry(e, i == m.cursor)
		m.offsets = append(m.offsets, line)
		line += lipgloss.Height(post) + 1
		posts = append(posts, post)
	}
	m.offsets = append(m.offsets, line)
	m.viewport.SetContent(strings.Join(posts, "\n\n"))

	if len(m.visible) == 0 {
		return
	}
	top, bottom := m.offsets[m.cursor], m.offsets[m.cursor+1]-1
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m Model) renderEntry(e model.FeedEntry, selected bool) string {
	p := e.Post()
	width := max(m.width-4, 10)

	header := fmt.Sprintf("%s %s · %s",
		theme.TitleStyle.Render(p.Author),
		theme.SubtleStyle.Render(p.AuthorHandle),
		theme.SubtleStyle.Render(ui.LongDate(p.Date)),
	)
	lines := []string{header}

	switch e := e.(type) {
	case model.AttributedUpdate:
		lines = append(lines, theme.UpdateTypeStyle(p.Type).Render(title.String(string(p.Type)))+
			theme.SubtleStyle.Render(" · "+e.ProjectTitle))
	case model.BareUpdate:
		lines = append(lines, theme.UpdateTypeStyle(p.Type).Render(title.String(string(p.Type))))
	}

	lines = append(lines, lipgloss.NewStyle().Width(width).Render(p.Content))
	if len(p.Hashtags) > 0 {
		lines = append(lines, theme.TagStyle.Render(strings.Join(p.Hashtags, " ")))
	}
	for _, a := range p.Attachments {
		lines = append(lines, theme.SubtleStyle.Render(fmt.Sprintf("[%s] %s", a.Type, a.Title)))
	}

	heart := "♡"
	likeStyle := theme.SubtleStyle
	if m.likes.Liked(p.ID) {
		heart = "♥"
		likeStyle = theme.LikedStyle
	}
	lines = append(lines, fmt.Sprintf("%s  %s  %s",
		likeStyle.Render(fmt.Sprintf("%s %d", heart, m.likes.Count(p.ID, p.Likes))),
		theme.SubtleStyle.Render(fmt.Sprintf("%d comments", p.Comments)),
		theme.SubtleStyle.Render(fmt.Sprintf("%d shares", p.Shares)),
	))

	post := strings.Join(lines, "\n")
	if selected {
		return theme.SelectedItemStyle.Render(post)
	}
	return theme.ListItemStyle.Render(post)
}

// View renders the feed view.
func (m Model) View() string {
	bar := lipgloss.NewStyle().MaxWidth(m.width).Render(ui.Chips(TypeFilters, m.kind, chipLabel))
	body := m.viewport.View()
	if len(m.visible) == 0 {
		body = ui.Empty(m.width, m.viewport.Height, "No posts of this type yet.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func chipLabel(s string) string {
	if s == filter.All {
		return "All Updates"
	}
	return title.String(s)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-headerHeight, 0)
	m.refresh()
}

// GotoTop scrolls to the newest post.
func (m *Model) GotoTop() {
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
}

// Capturing reports whether the view is consuming text input.
func (m Model) Capturing() bool { return false }

// KeyHints returns the status bar hints for the view.
func (m Model) KeyHints() string {
	return "j/k move | l like | f/F type | ? help"
}
