// Package team is the team roster section: live search, a role filter
// and member cards that open a profile modal.
package team

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/filter"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
	"github.com/nhle/deepdetect/internal/ui/detail"
)

// headerHeight covers the search row, the role chips and a blank line.
const headerHeight = 3

// Model is the team section view.
type Model struct {
	content   *content.Store
	keys      *keys.KeyMap
	search    textinput.Model
	searching bool
	role      string
	visible   []model.TeamMember
	cursor    int
	viewport  viewport.Model
	detail    detail.Model[model.TeamMember]
	width     int
	height    int
}

// New creates the team view showing the whole roster.
func New(c *content.Store, k *keys.KeyMap, width, height int) Model {
	si := textinput.New()
	si.Placeholder = "search by name, role or specialization..."
	si.Prompt = "/ "

	m := Model{
		content:  c,
		keys:     k,
		search:   si,
		role:     filter.All,
		viewport: viewport.New(width, height-headerHeight),
	}
	m.detail = detail.New[model.TeamMember](k, renderProfile, width, height)
	m.SetSize(width, height)
	m.apply()
	return m
}

// Query returns the active search and role filter.
func (m Model) Query() filter.TeamQuery {
	return filter.TeamQuery{Search: m.search.Value(), Role: m.role}
}

// Visible returns the members passing the current query, in roster order.
func (m Model) Visible() []model.TeamMember { return m.visible }

// Selected returns the member shown in the profile modal.
func (m Model) Selected() (model.TeamMember, bool) { return m.detail.Current() }

func (m *Model) apply() {
	m.visible = filter.Team(m.content.Team(), m.Query())
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
	m.refresh()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the team view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.detail.Active() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.memberAt(msg.Y); ok {
				m.cursor = i
				m.detail.Open(m.visible[i])
				m.refresh()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSearchKeys feeds the search box and re-filters on every keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.Reset()
		m.apply()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.apply()
	return m, cmd
}

func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.NextRole):
		m.role = ui.Cycle(m.content.Roles(), m.role, 1)
		m.apply()

	case key.Matches(msg, m.keys.PrevRole):
		m.role = ui.Cycle(m.content.Roles(), m.role, -1)
		m.apply()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
			m.refresh()
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.visible) > 0 {
			m.detail.Open(m.visible[m.cursor])
		}
	}
	return m, nil
}

// memberAt maps a row in the view to the card drawn there.
func (m Model) memberAt(y int) (int, bool) {
	row := y - headerHeight + m.viewport.YOffset
	if y < headerHeight || row < 0 {
		return 0, false
	}
	stride := cardHeight + 1
	if row%stride >= cardHeight {
		return 0, false
	}
	i := row / stride
	return i, i < len(m.visible)
}

// View renders the team view.
func (m Model) View() string {
	if m.detail.Active() {
		return m.detail.View()
	}

	searchBar := m.search.View()
	if !m.searching && m.search.Value() == "" {
		searchBar = theme.HelpStyle.Render("/ search team")
	}
	roles := lipgloss.NewStyle().MaxWidth(m.width).Render(ui.Chips(m.content.Roles(), m.role, roleLabel))

	body := m.viewport.View()
	if len(m.visible) == 0 {
		body = ui.Empty(m.width, m.viewport.Height,
			"No team members match your search.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, searchBar, roles, "", body)
}

var titler = cases.Title(language.English)

func roleLabel(r string) string {
	if r == filter.All {
		return "All"
	}
	return titler.String(r)
}

// cardHeight is the number of lines a member card takes.
const cardHeight = 3

// refresh redraws the cards and keeps the cursor in view.
func (m *Model) refresh() {
	cards := make([]string, len(m.visible))
	for i, member := range m.visible {
		cards[i] = m.renderCard(member, i == m.cursor)
	}
	m.viewport.SetContent(strings.Join(cards, "\n\n"))

	top := m.cursor * (cardHeight + 1)
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom := top + cardHeight; bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m Model) renderCard(member model.TeamMember, selected bool) string {
	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Background(theme.ColorEmerald).
		Padding(0, 1).
		Render(member.Initials())

	name := theme.TitleStyle.Render(member.Name)
	if member.IsLead {
		name += " " + theme.LeadBadgeStyle.Render("★ LEAD")
	}
	width := max(m.width-8, 10)
	lines := lipgloss.JoinVertical(lipgloss.Left,
		name,
		theme.SubtleStyle.Render(member.Role),
		lipgloss.NewStyle().MaxWidth(width).Render(member.Specialization),
	)
	card := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", lines)

	if selected {
		return theme.SelectedItemStyle.Render(card)
	}
	return theme.ListItemStyle.Render(card)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.Width = max(width-4, 10)
	m.viewport.Width = width
	m.viewport.Height = max(height-headerHeight, 0)
	m.detail.SetSize(width, height)
	m.refresh()
}

// GotoTop scrolls to the first member.
func (m *Model) GotoTop() {
	m.detail.Close()
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
}

// Capturing reports whether the search box has focus.
func (m Model) Capturing() bool { return m.searching }

// KeyHints returns the status bar hints for the view.
func (m Model) KeyHints() string {
	switch {
	case m.detail.Active():
		return "j/k scroll | x/esc close"
	case m.searching:
		return "type to filter | enter done | esc clear"
	}
	return "j/k move | enter profile | / search | r/R role | ? help"
}

func renderProfile(member model.TeamMember, width int) (string, string) {
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var b strings.Builder

	role := member.Role
	if member.IsLead {
		role += "  " + theme.LeadBadgeStyle.Render("★ Project Lead")
	}
	b.WriteString(theme.SubtleStyle.Render(role) + "\n")
	b.WriteString(wrap.Render(member.Specialization) + "\n\n")
	b.WriteString(wrap.Render(member.Bio) + "\n\n")

	b.WriteString(theme.TitleStyle.Render("Skills") + "\n")
	for _, s := range member.Skills {
		b.WriteString(theme.TagStyle.Render("• "+s) + "\n")
	}

	links := []struct{ label, value string }{
		{"Email", member.Email},
		{"GitHub", member.GitHub},
		{"LinkedIn", member.LinkedIn},
	}
	var shown []string
	for _, l := range links {
		if l.value != "" {
			shown = append(shown, fmt.Sprintf("%-9s %s", l.label, l.value))
		}
	}
	if len(shown) > 0 {
		b.WriteString("\n" + theme.TitleStyle.Render("Contact") + "\n")
		b.WriteString(strings.Join(shown, "\n"))
	}
	return member.Name, b.String()
}
