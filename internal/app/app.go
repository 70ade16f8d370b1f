package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/deepdetect/internal/content"
	"github.com/nhle/deepdetect/internal/forum"
	"github.com/nhle/deepdetect/internal/keys"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/nav"
	"github.com/nhle/deepdetect/internal/relay"
	"github.com/nhle/deepdetect/internal/store"
	"github.com/nhle/deepdetect/internal/ui"
	"github.com/nhle/deepdetect/internal/ui/command"
	feedview "github.com/nhle/deepdetect/internal/ui/feed"
	forumview "github.com/nhle/deepdetect/internal/ui/forum"
	helpview "github.com/nhle/deepdetect/internal/ui/help"
	"github.com/nhle/deepdetect/internal/ui/home"
	"github.com/nhle/deepdetect/internal/ui/markdown"
	"github.com/nhle/deepdetect/internal/ui/projects"
	"github.com/nhle/deepdetect/internal/ui/team"
)

// Overlay is a panel drawn in place of the active section.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayCommand
)

// Deps are the collaborators the root model needs.
type Deps struct {
	Content     *content.Store
	Config      *model.AppConfig
	Sender      relay.Sender
	Credentials relay.Credentials

	// Journal may be nil, in which case deliveries are only logged.
	Journal store.Journal
	Logger  *zap.Logger
}

// Model is the root Bubble Tea model. It owns the navigation controller,
// routes messages to the active section and runs relay calls.
type Model struct {
	deps    Deps
	sender  relay.Sender
	nav     *nav.Controller
	keys    *keys.KeyMap
	layout  ui.Layout
	overlay Overlay

	home     home.Model
	projects projects.Model
	team     team.Model
	research markdown.Model
	forum    forumview.Model
	feed     feedview.Model
	details  markdown.Model
	future   markdown.Model

	helpView    helpview.Model
	commandView command.Model

	// ticketSeq numbers relay submissions; pendingTicket is the one whose
	// answer the current forum view is waiting for, or zero.
	ticketSeq     int
	pendingTicket int

	flash string
	ready bool
}

// New creates the root model.
func New(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Config == nil {
		deps.Config = model.DefaultAppConfig()
	}
	k := keys.DefaultKeyMap()

	m := Model{
		deps:        deps,
		sender:      Journaled(deps.Sender, deps.Journal, deps.Config.Relay.Backend, deps.Logger),
		nav:         nav.NewController(deps.Config.Display.StartSection),
		keys:        k,
		layout:      ui.NewLayout(80, 24, deps.Config.Display.SidebarWidth),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(80, 24),
	}
	m.rebuild(m.nav.Active())
	return m
}

// Active returns the section being shown.
func (m Model) Active() nav.Section { return m.nav.Active() }

// Overlay returns the overlay drawn over the section, if any.
func (m Model) Overlay() Overlay { return m.overlay }

// Init returns the initial command.
func (m Model) Init() tea.Cmd { return nil }

// rebuild replaces the view for s with a fresh one at the current size.
// Leaving a section discards its local state.
func (m *Model) rebuild(s nav.Section) {
	c := m.deps.Content
	w, h := m.layout.ContentWidth(), m.layout.ContentHeight()

	switch s {
	case nav.Home:
		m.home = home.New(c, m.keys, w, h)
	case nav.Projects:
		m.projects = projects.New(c, m.keys, w, h)
	case nav.Team:
		m.team = team.New(c, m.keys, w, h)
	case nav.Research:
		m.research = markdown.New(m.keys, markdown.ResearchPage(c.Research()), w, h)
	case nav.Discussion:
		cfg := m.deps.Config.Forum
		m.forum = forumview.New(c, m.keys, m.deps.Credentials, forum.Defaults{
			Subject:         cfg.DefaultSubject,
			AnonymousSender: cfg.AnonymousSender,
			Recipient:       cfg.RecipientEmail,
		}, w, h)
	case nav.Feed:
		m.feed = feedview.New(c, m.keys, w, h)
	case nav.Details:
		m.details = markdown.NewTabbed(m.keys, c.DetailTabs(), w, h)
	case nav.Future:
		m.future = markdown.New(m.keys, c.Future(), w, h)
	}
}

// selectSection runs a navigation transition to id.
func (m *Model) selectSection(id string) {
	prev := m.nav.Active()
	s, changed := m.nav.Select(id)
	m.transition(prev, s, changed)
}

// cycleSection moves step places through the sidebar sections.
func (m *Model) cycleSection(step int) {
	prev := m.nav.Active()
	var s nav.Section
	if step > 0 {
		s = m.nav.Next()
	} else {
		s = m.nav.Prev()
	}
	m.transition(prev, s, s != prev)
}

// transition rebuilds the newly active view. Re-selecting the active
// section only scrolls it to the top.
func (m *Model) transition(prev, s nav.Section, changed bool) {
	m.overlay = OverlayNone
	m.flash = ""

	if !changed {
		m.gotoTop(s)
		return
	}
	if prev == nav.Discussion {
		// The forum view is gone; its pending answer will be dropped.
		m.pendingTicket = 0
	}
	m.rebuild(s)
}

// resize updates the active view. Inactive views are rebuilt at the
// current size when selected.
func (m *Model) resize(s nav.Section, w, h int) {
	switch s {
	case nav.Home:
		m.home.SetSize(w, h)
	case nav.Projects:
		m.projects.SetSize(w, h)
	case nav.Team:
		m.team.SetSize(w, h)
	case nav.Research:
		m.research.SetSize(w, h)
	case nav.Discussion:
		m.forum.SetSize(w, h)
	case nav.Feed:
		m.feed.SetSize(w, h)
	case nav.Details:
		m.details.SetSize(w, h)
	case nav.Future:
		m.future.SetSize(w, h)
	}
}

func (m *Model) gotoTop(s nav.Section) {
	switch s {
	case nav.Home:
		m.home.GotoTop()
	case nav.Projects:
		m.projects.GotoTop()
	case nav.Team:
		m.team.GotoTop()
	case nav.Research:
		m.research.GotoTop()
	case nav.Discussion:
		m.forum.GotoTop()
	case nav.Feed:
		m.feed.GotoTop()
	case nav.Details:
		m.details.GotoTop()
	case nav.Future:
		m.future.GotoTop()
	}
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height, m.deps.Config.Display.SidebarWidth)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.resize(m.nav.Active(), w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		return m, nil

	case ui.NavigateMsg:
		m.selectSection(string(msg.Section))
		return m, nil

	case ui.SubmitMsg:
		m.ticketSeq++
		m.pendingTicket = m.ticketSeq
		return m, m.deliver(m.ticketSeq, msg)

	case ui.DeliveredMsg:
		if msg.Ticket != m.pendingTicket || m.nav.Active() != nav.Discussion {
			m.deps.Logger.Debug("dropping stale delivery result", zap.Int("ticket", msg.Ticket))
			return m, nil
		}
		m.pendingTicket = 0
		var cmd tea.Cmd
		m.forum, cmd = m.forum.Update(msg)
		return m, cmd

	case command.CommandMsg:
		m.overlay = OverlayNone
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.overlay = OverlayNone
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if next, cmd, handled := m.handleGlobalKey(msg); handled {
			return next, cmd
		}
	}

	return m.updateActiveView(msg)
}

// handleGlobalKey processes keys that work in every section. Keys are left
// to the view while it is capturing text input.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit, true
	}

	switch m.overlay {
	case OverlayCommand:
		return m, nil, false
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back) {
			m.overlay = OverlayNone
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit, true
		}
		return m, nil, true
	}

	if m.capturing() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil, true
	case key.Matches(msg, m.keys.Command):
		m.overlay = OverlayCommand
		return m, m.commandView.Focus(), true
	case key.Matches(msg, m.keys.NextSection):
		m.cycleSection(1)
		return m, nil, true
	case key.Matches(msg, m.keys.PrevSection):
		m.cycleSection(-1)
		return m, nil, true
	case key.Matches(msg, m.keys.Jump):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(nav.Primary) {
			m.selectSection(string(nav.Primary[i]))
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) capturing() bool {
	switch m.nav.Active() {
	case nav.Team:
		return m.team.Capturing()
	case nav.Discussion:
		return m.forum.Capturing()
	}
	return false
}

// handleMouse routes clicks on the chrome to navigation and everything
// else, in content coordinates, to the active view.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if s, ok := m.layout.SidebarSectionAt(msg.X, msg.Y); ok {
			m.selectSection(string(s))
			return m, nil
		}
		if s, ok := m.layout.FooterLinkAt(msg.X, msg.Y); ok {
			m.selectSection(string(s))
			return m, nil
		}
	}

	ox, oy := m.layout.ContentOrigin()
	x, y := msg.X-ox, msg.Y-oy
	if x < 0 || y < 0 || x >= m.layout.ContentWidth() || y >= m.layout.ContentHeight() {
		return m, nil
	}
	msg.X, msg.Y = x, y
	return m.updateActiveView(msg)
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.overlay {
	case OverlayCommand:
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	case OverlayHelp:
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch m.nav.Active() {
	case nav.Home:
		m.home, cmd = m.home.Update(msg)
	case nav.Projects:
		m.projects, cmd = m.projects.Update(msg)
	case nav.Team:
		m.team, cmd = m.team.Update(msg)
	case nav.Research:
		m.research, cmd = m.research.Update(msg)
	case nav.Discussion:
		m.forum, cmd = m.forum.Update(msg)
	case nav.Feed:
		m.feed, cmd = m.feed.Update(msg)
	case nav.Details:
		m.details, cmd = m.details.Update(msg)
	case nav.Future:
		m.future, cmd = m.future.Update(msg)
	}

	return m, cmd
}

// deliver returns a command that relays a forum post and reports back
// with the submission's ticket.
func (m Model) deliver(ticket int, sub ui.SubmitMsg) tea.Cmd {
	sender := m.sender
	return func() tea.Msg {
		err := sender.Send(context.Background(), sub.Credentials, sub.Message)
		return ui.DeliveredMsg{Ticket: ticket, Err: err}
	}
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	site := m.deps.Content.Site()
	header := m.layout.RenderHeader(site.Title+" · "+site.Subtitle, m.headerStatus())
	sidebar := m.layout.RenderSidebar(m.nav.Active(), site.Sidebar)
	footer := m.layout.RenderFooter(m.deps.Content.Footer())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, sidebar, m.renderContent(), footer, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.overlay {
	case OverlayHelp:
		return m.helpView.View()
	case OverlayCommand:
		return m.commandView.View()
	}

	switch m.nav.Active() {
	case nav.Home:
		return m.home.View()
	case nav.Projects:
		return m.projects.View()
	case nav.Team:
		return m.team.View()
	case nav.Research:
		return m.research.View()
	case nav.Discussion:
		return m.forum.View()
	case nav.Feed:
		return m.feed.View()
	case nav.Details:
		return m.details.View()
	case nav.Future:
		return m.future.View()
	default:
		return ""
	}
}

func (m Model) headerStatus() string {
	if m.flash != "" {
		return m.flash
	}
	if m.pendingTicket != 0 {
		return "sending post..."
	}
	return m.nav.Active().Label()
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.overlay {
	case OverlayHelp:
		return "? close help | esc back"
	case OverlayCommand:
		return "enter go | esc cancel"
	}

	switch m.nav.Active() {
	case nav.Home:
		return m.home.KeyHints()
	case nav.Projects:
		return m.projects.KeyHints()
	case nav.Team:
		return m.team.KeyHints()
	case nav.Research:
		return m.research.KeyHints()
	case nav.Discussion:
		return m.forum.KeyHints()
	case nav.Feed:
		return m.feed.KeyHints()
	case nav.Details:
		return m.details.KeyHints()
	case nav.Future:
		return m.future.KeyHints()
	}
	return "tab section | : palette | ? help | q quit"
}
