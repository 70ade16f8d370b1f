package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/deepdetect/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorEmerald = lipgloss.AdaptiveColor{Dark: "#34D399", Light: "#047857"}
	ColorLime    = lipgloss.AdaptiveColor{Dark: "#A3E635", Light: "#4D7C0F"}
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the top bar and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorEmerald).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// FooterStyle renders the persistent site footer.
var FooterStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// SidebarStyle frames the section navigation column.
var SidebarStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), false, true, false, false).
	BorderForeground(ColorBorder)

// SidebarActiveStyle highlights the active section.
var SidebarActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorEmerald).
	Border(lipgloss.ThickBorder(), false, false, false, true).
	BorderForeground(ColorEmerald)

// SidebarItemStyle is the base style for inactive sections.
var SidebarItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Foreground(ColorWhite)

// DetailPanelStyle wraps modal and overlay content.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorEmerald)

// TitleStyle is used for page and card titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// SubtleStyle is used for secondary text.
var SubtleStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// DimmedStyle is used for empty states.
var DimmedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// CardStyle frames a statistic or summary card.
var CardStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ChipStyle renders an inactive filter option.
var ChipStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// ActiveChipStyle renders the selected filter option.
var ActiveChipStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorEmerald).
	Padding(0, 1)

// TagStyle renders hashtags, skills and technologies.
var TagStyle = lipgloss.NewStyle().
	Foreground(ColorBlue)

// LeadBadgeStyle marks the project lead.
var LeadBadgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorYellow)

// LikedStyle colours a liked counter.
var LikedStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorRed)

// SuccessStyle and ErrorStyle colour the forum status line.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorEmerald)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorRed)
)

// StatusStyle returns a color-coded style for a project status.
func StatusStyle(status model.ProjectStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch status {
	case model.ProjectActive:
		return base.Foreground(ColorEmerald)
	case model.ProjectPlanning:
		return base.Foreground(ColorBlue)
	case model.ProjectCompleted:
		return base.Foreground(ColorMagenta)
	case model.ProjectPaused:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGray)
	}
}

// PriorityStyle returns a color-coded style for a project priority.
func PriorityStyle(priority model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch priority {
	case model.PriorityCritical:
		return base.Foreground(ColorRed)
	case model.PriorityHigh:
		return base.Foreground(ColorOrange)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// UpdateTypeStyle returns a color-coded style for a feed post type.
func UpdateTypeStyle(t model.UpdateType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch t {
	case model.UpdateMilestone:
		return base.Foreground(ColorMagenta)
	case model.UpdateProgress:
		return base.Foreground(ColorBlue)
	case model.UpdateResearch:
		return base.Foreground(ColorEmerald)
	case model.UpdateAnnouncement:
		return base.Foreground(ColorOrange)
	default:
		return base.Foreground(ColorGray)
	}
}
