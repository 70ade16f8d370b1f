package projects

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/theme"
	"github.com/nhle/deepdetect/internal/ui"
)

// cardHeight is the number of lines a project card takes.
const cardHeight = 5

// Item wraps a model.Project so it can be used in a bubbles/list.
type Item struct {
	Project model.Project
}

// FilterValue returns the string used for filtering.
func (i Item) FilterValue() string { return i.Project.Title }

// Delegate renders project cards.
type Delegate struct {
	bar progress.Model
}

func newDelegate() Delegate {
	return Delegate{
		bar: progress.New(
			progress.WithSolidFill(theme.ColorEmerald.Dark),
			progress.WithWidth(20),
			progress.WithoutPercentage(),
		),
	}
}

// Height returns the number of lines each item takes.
func (d Delegate) Height() int { return cardHeight }

// Spacing returns the number of blank lines between items.
func (d Delegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws a single project card.
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	p := it.Project

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.TitleStyle.Render(p.Title),
		" ",
		theme.PriorityStyle(p.Priority).Render(strings.ToUpper(string(p.Priority))),
	)
	status := fmt.Sprintf("%s %s %d%%",
		theme.StatusStyle(p.Status).Render(string(p.Status)),
		d.bar.ViewAs(float64(p.Progress)/100),
		p.Progress,
	)
	meta := fmt.Sprintf("%d members | %d/%d milestones | %s",
		len(p.Team), p.CompletedMilestones(), len(p.Milestones),
		ui.DateRange(p.StartDate, p.EndDate),
	)
	techs := theme.TagStyle.Render(ui.Technologies(p.Technologies))

	lines := []string{
		title,
		theme.SubtleStyle.Render(p.Subtitle),
		status,
		theme.SubtleStyle.Render(meta),
		techs,
	}
	width := max(m.Width()-2, 0)
	for i, l := range lines {
		lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(l)
	}
	card := strings.Join(lines, "\n")

	if index == m.Index() {
		card = theme.SelectedItemStyle.Render(card)
	} else {
		card = theme.ListItemStyle.Render(card)
	}
	fmt.Fprint(w, card)
}
