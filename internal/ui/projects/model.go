// Package projects is the project portfolio section: a status filter, a
// list of project cards and a detail modal.
package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/filter"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
	"github.com/nhle/deepdetect/internal/ui/detail"
)

// StatusFilters are the options of the status filter bar.
var StatusFilters = []string{
	filter.All,
	string(model.ProjectActive),
	string(model.ProjectPlanning),
	string(model.ProjectCompleted),
	string(model.ProjectPaused),
}

// filterBarHeight is the filter bar plus the blank line below it.
const filterBarHeight = 2

// Model is the projects section view.
type Model struct {
	content *content.Store
	keys    *keys.KeyMap
	list    list.Model
	detail  detail.Model[model.Project]
	status  string
	width   int
	height  int
}

// New creates the projects view with the "all" filter.
func New(c *content.Store, k *keys.KeyMap, width, height int) Model {
	l := list.New(nil, newDelegate(), width, height-filterBarHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	m := Model{
		content: c,
		keys:    k,
		list:    l,
		status:  filter.All,
	}
	m.detail = detail.New[model.Project](k, m.renderDetail, width, height)
	m.apply()
	m.SetSize(width, height)
	return m
}

// Status returns the active status filter key.
func (m Model) Status() string { return m.status }

// Visible returns the projects passing the current filter, in order.
func (m Model) Visible() []model.Project {
	return filter.Category(m.content.Projects(), m.status, func(p model.Project) model.ProjectStatus {
		return p.Status
	})
}

// Selected returns the project shown in the detail modal.
func (m Model) Selected() (model.Project, bool) { return m.detail.Current() }

func (m *Model) apply() {
	visible := m.Visible()
	items := make([]list.Item, len(visible))
	for i, p := range visible {
		items[i] = Item{Project: p}
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the projects view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.detail.Active() {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextFilter):
			m.status = ui.Cycle(StatusFilters, m.status, 1)
			m.apply()
			return m, nil
		case key.Matches(msg, m.keys.PrevFilter):
			m.status = ui.Cycle(StatusFilters, m.status, -1)
			m.apply()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if it, ok := m.list.SelectedItem().(Item); ok {
				m.detail.Open(it.Project)
			}
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.itemAt(msg.Y); ok {
				m.list.Select(i)
				m.detail.Open(m.list.Items()[i].(Item).Project)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// itemAt maps a row in the view to the index of the card drawn there.
func (m Model) itemAt(y int) (int, bool) {
	row := y - filterBarHeight
	if row < 0 {
		return 0, false
	}
	stride := cardHeight + 1
	if row%stride >= cardHeight {
		return 0, false
	}
	i := m.list.Paginator.Page*m.list.Paginator.PerPage + row/stride
	if i >= len(m.list.Items()) {
		return 0, false
	}
	return i, true
}

// View renders the projects view.
func (m Model) View() string {
	if m.detail.Active() {
		return m.detail.View()
	}

	bar := lipgloss.NewStyle().MaxWidth(m.width).Render(ui.Chips(StatusFilters, m.status, chipLabel))
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = ui.Empty(m.width, m.height-filterBarHeight,
			"No projects match the selected filter.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, "", body)
}

func chipLabel(s string) string {
	if s == filter.All {
		return "All Projects"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-filterBarHeight, 0))
	m.detail.SetSize(width, height)
}

// GotoTop selects the first card and closes the modal.
func (m *Model) GotoTop() {
	m.detail.Close()
	m.list.ResetSelected()
}

// Capturing reports whether the view is consuming text input.
func (m Model) Capturing() bool { return false }

// KeyHints returns the status bar hints for the view.
func (m Model) KeyHints() string {
	if m.detail.Active() {
		return "j/k scroll | x/esc close"
	}
	return "j/k move | enter details | f/F status | ? help"
}

func (m Model) renderDetail(p model.Project, width int) (string, string) {
	wrap := lipgloss.NewStyle().Width(max(width, 10))
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		theme.StatusStyle(p.Status).Render(string(p.Status)),
		theme.PriorityStyle(p.Priority).Render(string(p.Priority)+" priority"),
		theme.SubtleStyle.Render(ui.DateRange(p.StartDate, p.EndDate)),
	)
	b.WriteString(wrap.Render(p.Description))
	b.WriteString("\n\n")

	b.WriteString(theme.TitleStyle.Render("Objectives") + "\n")
	for _, o := range p.Objectives {
		b.WriteString(wrap.Render("• "+o) + "\n")
	}

	fmt.Fprintf(&b, "\n%s\n", theme.TitleStyle.Render(
		fmt.Sprintf("Milestones (%d/%d)", p.CompletedMilestones(), len(p.Milestones))))
	for _, ms := range p.Milestones {
		mark := theme.SubtleStyle.Render("○")
		when := "due " + ui.LongDate(ms.DueDate)
		if ms.Completed {
			mark = theme.SuccessStyle.Render("✓")
			if ms.CompletedDate != nil {
				when = "completed " + ui.LongDate(*ms.CompletedDate)
			}
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, ms.Title, theme.SubtleStyle.Render(when))
		if ms.Description != "" {
			b.WriteString(wrap.Render("  "+ms.Description) + "\n")
		}
	}

	b.WriteString("\n" + theme.TitleStyle.Render("Team") + "\n")
	for _, member := range m.content.ProjectTeam(p) {
		line := fmt.Sprintf("%s  %s", member.Name, theme.SubtleStyle.Render(member.Role))
		if member.IsLead {
			line += " " + theme.LeadBadgeStyle.Render("LEAD")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + theme.TitleStyle.Render("Budget") + "\n")
	fmt.Fprintf(&b, "Total      %s\nAllocated  %s\nSpent      %s\n",
		ui.Money(p.Budget.Total), ui.Money(p.Budget.Allocated), ui.Money(p.Budget.Spent))

	b.WriteString("\n" + theme.TitleStyle.Render("Technologies") + "\n")
	b.WriteString(wrap.Render(theme.TagStyle.Render(strings.Join(p.Technologies, ", "))))

	return p.Title, b.String()
}
