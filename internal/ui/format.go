package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/nhle/deepdetect/internal/filter"
	"github.com/nhle/deepdetect/internal/model"
	"github.com/nhle/deepdetect/internal/theme"
)

// Money formats an amount in pounds with thousands separators.
func Money(amount float64) string {
	return "£" + humanize.CommafWithDigits(amount, 2)
}

// ShortMoney formats an amount rounded to thousands, e.g. £48K.
func ShortMoney(amount float64) string {
	if amount < 1000 {
		return "£" + humanize.Comma(int64(math.Round(amount)))
	}
	return "£" + humanize.Comma(int64(math.Round(amount/1000))) + "K"
}

// LongDate formats a content date as "Jan 2, 2006".
func LongDate(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

// DateRange formats a project's running dates; projects with no end date
// are "Ongoing".
func DateRange(start model.Date, end *model.Date) string {
	if end == nil {
		return LongDate(start) + " - Ongoing"
	}
	return LongDate(start) + " - " + LongDate(*end)
}

// Technologies lists the first three technologies and a "+N more" suffix.
func Technologies(techs []string) string {
	if len(techs) <= 3 {
		return strings.Join(techs, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(techs[:3], ", "), len(techs)-3)
}

// Chips renders a filter bar with the active option highlighted.
func Chips(options []string, active string, label func(string) string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		text := o
		if label != nil {
			text = label(o)
		}
		if o == active {
			parts[i] = theme.ActiveChipStyle.Render(text)
		} else {
			parts[i] = theme.ChipStyle.Render(text)
		}
	}
	return strings.Join(parts, " ")
}

// Cycle returns the option after (or, with step -1, before) current,
// wrapping around. Unknown values restart at filter.All's position.
func Cycle(options []string, current string, step int) string {
	if len(options) == 0 {
		return filter.All
	}
	i := 0
	for j, o := range options {
		if o == current {
			i = j
			break
		}
	}
	n := len(options)
	return options[((i+step)%n+n)%n]
}

// Empty renders a placeholder for an empty list.
func Empty(width, height int, text string) string {
	return theme.DimmedStyle.
		Width(width).
		Height(height).
		Render(text)
}
