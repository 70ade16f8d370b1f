// Package forum is the community discussion section: a compose form that
// relays posts to the research team, a category filter and the thread
// list.
package forum

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/filter"
	"github.com/nhle/deepdetect/internal/forum"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/reaction"
	"github.com/nhle/deepdetect/internal/relay"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
)

// Model is the forum section view. The form binds directly to the
// machine's fields, so the machine lives on the heap and survives model
// copies.
type Model struct {
	content   *content.Store
	keys      *keys.KeyMap
	machine   *forum.Machine
	form      *huh.Form
	composing bool
	spinner   spinner.Model
	likes     reaction.Set
	cursor    int
	width     int
	height    int
}

// New creates the forum view with an idle form.
func New(c *content.Store, k *keys.KeyMap, creds relay.Credentials, defaults forum.Defaults, width, height int) Model {
	m := Model{
		content: c,
		keys:    k,
		machine: forum.New(creds, defaults),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   width,
		height:  height,
	}
	m.form = m.buildForm()
	return m
}

// Machine exposes the submission state.
func (m Model) Machine() *forum.Machine { return m.machine }

// Composing reports whether the compose form is open.
func (m Model) Composing() bool { return m.composing }

// Visible returns the discussions in the selected category.
func (m Model) Visible() []model.Discussion {
	return filter.Category(m.content.Discussions(), m.machine.Category, func(d model.Discussion) string {
		return d.Category
	})
}

func (m Model) categoryIDs() []string {
	cats := m.content.ForumCategories()
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

func (m Model) categoryLabel(id string) string {
	for _, c := range m.content.ForumCategories() {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

func (m *Model) buildForm() *huh.Form {
	opts := make([]huh.Option[string], 0, len(m.content.ForumCategories()))
	for _, c := range m.content.ForumCategories() {
		opts = append(opts, huh.NewOption(c.Label, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic Title").
				Placeholder("What would you like to discuss?").
				Value(&m.machine.TopicTitle),
			huh.NewInput().
				Title("Your Email").
				Placeholder("Optional, so the team can reply").
				Value(&m.machine.ContactEmail),
			huh.NewSelect[string]().
				Title("Category").
				Options(opts...).
				Value(&m.machine.Category),
			huh.NewText().
				Title("Message").
				Placeholder("Share your questions, insights or experiences...").
				Value(&m.machine.Message),
		),
	).WithShowHelp(false).WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	return max(min(m.width-4, 80), 20)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// Update handles messages for the forum view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.DeliveredMsg:
		if m.machine.Complete(msg.Err) {
			m.form = m.buildForm()
			if m.composing {
				return m, m.form.Init()
			}
		}
		return m, nil

	case spinner.TickMsg:
		if m.machine.Status() != forum.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.composing {
		return m.updateCompose(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Compose):
			m.composing = true
			m.form = m.buildForm()
			return m, m.form.Init()
		case key.Matches(k, m.keys.NextFilter):
			m.machine.Category = ui.Cycle(m.categoryIDs(), m.machine.Category, 1)
			m.cursor = 0
		case key.Matches(k, m.keys.PrevFilter):
			m.machine.Category = ui.Cycle(m.categoryIDs(), m.machine.Category, -1)
			m.cursor = 0
		case key.Matches(k, m.keys.Down):
			if m.cursor < len(m.Visible())-1 {
				m.cursor++
			}
		case key.Matches(k, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(k, m.keys.Like):
			if v := m.Visible(); len(v) > 0 {
				m.likes.Toggle(v[m.cursor].ID)
			}
		}
	}
	return m, nil
}

func (m Model) updateCompose(msg tea.Msg) (Model, tea.Cmd) {
	// The form is disabled while a post is in flight.
	if m.machine.Status() == forum.Loading {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.composing = false
		m.form = m.buildForm()
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.begin()
	case huh.StateAborted:
		m.composing = false
		m.form = m.buildForm()
		return m, nil
	}
	return m, cmd
}

// begin validates the form and, when it may be sent, asks the shell to
// relay it.
func (m Model) begin() (Model, tea.Cmd) {
	msg, err := m.machine.Begin()
	m.form = m.buildForm()
	if err != nil {
		return m, m.form.Init()
	}

	creds := m.machine.Credentials()
	submit := func() tea.Msg {
		return ui.SubmitMsg{Message: msg, Credentials: creds}
	}
	return m, tea.Batch(submit, m.spinner.Tick)
}

// View renders the forum view.
func (m Model) View() string {
	title := theme.TitleStyle.Render("Community Forum")
	intro := theme.SubtleStyle.Render("Connect with farmers, researchers and agricultural experts.")
	bar := lipgloss.NewStyle().MaxWidth(m.width).Render(ui.Chips(m.categoryIDs(), m.machine.Category, m.categoryLabel))

	sections := []string{title, intro, "", bar, ""}
	if m.composing {
		sections = append(sections, theme.CardStyle.Render(m.form.View()))
	} else {
		sections = append(sections, theme.HelpStyle.Render("[n] Start a new discussion"))
	}
	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, "", m.renderDiscussions())

	return lipgloss.NewStyle().
		MaxHeight(m.height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) statusLine() string {
	notice := m.machine.Notice()
	switch m.machine.Status() {
	case forum.Loading:
		return m.spinner.View() + " " + notice
	case forum.Success:
		return theme.SuccessStyle.Render(notice)
	case forum.Error:
		return theme.ErrorStyle.Render(notice)
	}
	return ""
}

func (m Model) renderDiscussions() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return theme.DimmedStyle.Render("No discussions yet. Be the first to start one!")
	}

	cards := make([]string, len(visible))
	for i, d := range visible {
		heart := "♡"
		likeStyle := theme.SubtleStyle
		if m.likes.Liked(d.ID) {
			heart = "♥"
			likeStyle = theme.LikedStyle
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render(d.Title),
			theme.SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", d.Author, ui.LongDate(d.Date), m.categoryLabel(d.Category))),
			lipgloss.NewStyle().Width(max(m.width-4, 10)).Render(d.Content),
			theme.TagStyle.Render(strings.Join(d.Tags, " ")),
			fmt.Sprintf("%s  %s",
				likeStyle.Render(fmt.Sprintf("%s %d", heart, m.likes.Count(d.ID, d.Likes))),
				theme.SubtleStyle.Render(fmt.Sprintf("%d replies", d.Replies)),
			),
		)
		if i == m.cursor {
			cards[i] = theme.SelectedItemStyle.Render(body)
		} else {
			cards[i] = theme.ListItemStyle.Render(body)
		}
	}
	return strings.Join(cards, "\n\n")
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.form = m.form.WithWidth(m.formWidth())
}

// GotoTop moves the cursor to the first discussion.
func (m *Model) GotoTop() { m.cursor = 0 }

// Capturing reports whether the compose form has focus.
func (m Model) Capturing() bool { return m.composing }

// KeyHints returns the status bar hints for the view.
func (m Model) KeyHints() string {
	switch {
	case m.machine.Status() == forum.Loading:
		return "sending..."
	case m.composing:
		return "tab next field | enter submit on last field | esc cancel"
	}
	return "n new post | f/F category | j/k move | l like | ? help"
}
