package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/nav"
	"github.com/nhle/deepdetect/internal/theme"
)

// sidebarTop is the number of sidebar rows above the first section entry.
const sidebarTop = 1

const quickLinksPrefix = "Quick links: "

const quickLinkGap = "  "

// Layout manages the terminal regions: header, sidebar, content, footer
// and status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	FooterHeight    int
	SidebarWidth    int
}

// NewLayout creates a Layout for the given terminal dimensions. The footer
// is dropped on short terminals.
func NewLayout(width, height, sidebarWidth int) Layout {
	l := Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		FooterHeight:    2,
		SidebarWidth:    sidebarWidth,
	}
	if height < 20 {
		l.FooterHeight = 0
	}
	if width < 2*sidebarWidth {
		l.SidebarWidth = 0
	}
	return l
}

// ContentWidth returns the width of the section content area.
func (l Layout) ContentWidth() int {
	return max(l.Width-l.SidebarWidth, 0)
}

// ContentHeight returns the height available for the section content.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.FooterHeight-l.StatusBarHeight, 0)
}

// ContentOrigin returns the screen coordinates of the content area's top
// left cell.
func (l Layout) ContentOrigin() (x, y int) {
	return l.SidebarWidth, l.HeaderHeight
}

// SidebarSectionAt returns the sidebar section drawn at screen cell (x, y).
func (l Layout) SidebarSectionAt(x, y int) (nav.Section, bool) {
	if x < 0 || x >= l.SidebarWidth {
		return "", false
	}
	i := y - l.HeaderHeight - sidebarTop
	if i < 0 || i >= len(nav.Primary) {
		return "", false
	}
	return nav.Primary[i], true
}

// FooterLinkAt returns the footer quick link drawn at screen cell (x, y).
func (l Layout) FooterLinkAt(x, y int) (nav.Section, bool) {
	if l.FooterHeight == 0 || y != l.HeaderHeight+l.ContentHeight() {
		return "", false
	}
	// FooterStyle pads one cell on the left.
	pos := 1 + lipgloss.Width(quickLinksPrefix)
	for _, s := range nav.QuickLinks {
		w := lipgloss.Width(s.Label())
		if x >= pos && x < pos+w {
			return s, true
		}
		pos += w + lipgloss.Width(quickLinkGap)
	}
	return "", false
}

// RenderHeader renders the top bar with a title on the left and a status
// on the right.
func (l Layout) RenderHeader(title, status string) string {
	titleRendered := theme.HeaderStyle.Render(title)
	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(status)

	gap := max(l.Width-lipgloss.Width(titleRendered)-lipgloss.Width(statusRendered), 0)
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, titleRendered, filler, statusRendered)
}

// RenderSidebar renders the section list with the active entry marked.
func (l Layout) RenderSidebar(active nav.Section, caption string) string {
	if l.SidebarWidth == 0 {
		return ""
	}
	inner := l.SidebarWidth - 1

	rows := []string{theme.SubtleStyle.Render(" Sections")}
	for i, s := range nav.Primary {
		label := fmt.Sprintf("%d %s", i+1, s.Label())
		if s == active {
			rows = append(rows, theme.SidebarActiveStyle.Render(label))
		} else {
			rows = append(rows, theme.SidebarItemStyle.Render(label))
		}
	}
	if !isPrimary(active) {
		rows = append(rows, "", theme.SidebarActiveStyle.Render(active.Label()))
	}
	if caption != "" {
		rows = append(rows, "", theme.SubtleStyle.Render(" "+caption))
	}

	return theme.SidebarStyle.
		Width(inner).
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(strings.Join(rows, "\n"))
}

func isPrimary(s nav.Section) bool {
	for _, p := range nav.Primary {
		if p == s {
			return true
		}
	}
	return false
}

// RenderFooter renders the two-line site footer: quick links and contact
// details, then partners and research focus.
func (l Layout) RenderFooter(f model.Footer) string {
	if l.FooterHeight == 0 {
		return ""
	}

	labels := make([]string, len(nav.QuickLinks))
	for i, s := range nav.QuickLinks {
		labels[i] = s.Label()
	}
	line1 := quickLinksPrefix + strings.Join(labels, quickLinkGap) +
		"  |  " + f.Contact.Email + "  " + f.Contact.Phone

	partners := make([]string, len(f.Partners))
	for i, p := range f.Partners {
		partners[i] = p.Name
	}
	line2 := "Partners: " + strings.Join(partners, " · ") +
		"  |  Focus: " + strings.Join(f.ResearchAreas, ", ")

	style := theme.FooterStyle.Width(l.Width).MaxHeight(1)
	return lipgloss.JoinVertical(lipgloss.Left,
		style.Render(truncate(line1, l.Width-2)),
		style.Render(truncate(line2, l.Width-2)),
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(truncate(hints, l.Width-2))

	gap := max(l.Width-lipgloss.Width(rendered), 0)
	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes the full screen.
func (l Layout) RenderWithFrame(header, sidebar, content, footer, statusBar string) string {
	body := lipgloss.NewStyle().
		Width(l.ContentWidth()).
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body)
	}

	parts := []string{header, body}
	if footer != "" {
		parts = append(parts, footer)
	}
	parts = append(parts, statusBar)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
