package home

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/nav"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
)

// Model is the landing page: hero copy, headline statistics and shortcuts
// into the projects and research sections.
type Model struct {
	content  *content.Store
	keys     *keys.KeyMap
	viewport viewport.Model
	width    int
	height   int
}

// New creates the landing page.
func New(c *content.Store, k *keys.KeyMap, width, height int) Model {
	m := Model{
		content:  c,
		keys:     k,
		viewport: viewport.New(width, height),
	}
	m.SetSize(width, height)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles the shortcut keys and scrolling.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Projects):
			return m, ui.Navigate(nav.Projects)
		case key.Matches(k, m.keys.Research):
			return m, ui.Navigate(nav.Research)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m Model) View() string {
	return m.viewport.View()
}

// SetSize updates the page dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(m.render())
}

// GotoTop scrolls to the start of the page.
func (m *Model) GotoTop() { m.viewport.GotoTop() }

// Capturing reports whether the view is consuming text input.
func (m Model) Capturing() bool { return false }

// KeyHints returns the status bar hints for the page.
func (m Model) KeyHints() string {
	return "p projects | r research | tab section | : palette | ? help | q quit"
}

func (m Model) render() string {
	site := m.content.Site()
	wrap := lipgloss.NewStyle().Width(max(m.width-2, 10))

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorEmerald).Render(site.Title)
	subtitle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorLime).Render(site.Subtitle)
	desc := wrap.Render(site.Description)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.ActiveChipStyle.Render("[p] Explore Projects"),
		"  ",
		theme.ChipStyle.Render("[r] Our Research"),
	)

	sections := []string{title, subtitle, "", desc, "", buttons, "", m.renderStats()}

	if latest := m.content.Timeline(); len(latest) > 0 {
		post := latest[0].Post()
		sections = append(sections, "",
			theme.SubtleStyle.Render("Latest from the feed · "+ui.LongDate(post.Date)),
			wrap.Render(post.Content),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStats() string {
	st := m.content.Stats()
	cards := []struct{ label, value string }{
		{"Active Projects", fmt.Sprint(st.ActiveProjects)},
		{"Team Members", fmt.Sprint(st.TeamSize)},
		{"Avg. Progress", fmt.Sprintf("%d%%", st.MeanProgress)},
		{"Total Budget", ui.ShortMoney(st.TotalBudget)},
	}

	// Four cards side by side when they fit, otherwise two rows.
	cardWidth := 18
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = theme.CardStyle.Width(cardWidth).Render(
			theme.SubtleStyle.Render(c.label) + "\n" + theme.TitleStyle.Render(c.value),
		)
	}
	if m.width >= 4*(cardWidth+2) {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], rendered[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, rendered[2], rendered[3]),
	)
}
