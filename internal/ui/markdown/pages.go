package markdown

import (
	"fmt"
	"strings"

	"github.com/nhle/deepdetect/internal/model"
)

// ResearchPage builds the research section document: impact figures,
// research areas and publications.
func ResearchPage(r model.Research) string {
	var b strings.Builder

	b.WriteString("# Research & Publications\n\n")

	b.WriteString("## Impact\n\n")
	b.WriteString("| Figure | Measure | Detail |\n|---:|---|---|\n")
	for _, s := range r.Impact {
		fmt.Fprintf(&b, "| **%s** | %s | %s |\n", s.Value, s.Label, s.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Research Areas\n\n")
	for _, a := range r.Areas {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", a.Title, a.Description)
		for _, ach := range a.Achievements {
			fmt.Fprintf(&b, "- %s\n", ach)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Publications\n\n")
	if len(r.Publications) == 0 {
		b.WriteString("_Publications will be listed here as they are released._\n")
	}
	for _, p := range r.Publications {
		title := p.Title
		if p.URL != "" {
			title = fmt.Sprintf("[%s](%s)", p.Title, p.URL)
		}
		fmt.Fprintf(&b, "- %s. %s. *%s*, %d.\n", title, p.Authors, p.Venue, p.Year)
	}

	return b.String()
}
