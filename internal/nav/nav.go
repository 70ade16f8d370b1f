// Package nav owns the active-section state of the site. Selection is
// total: anything outside the known set resolves to Home.
package nav

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies a top-level page.
type Section string

const (
	Home       Section = "home"
	Projects   Section = "projects"
	Team       Section = "team"
	Research   Section = "research"
	Discussion Section = "discussion"

	// Extended sections are reachable from the command palette only.
	Feed    Section = "feed"
	Details Section = "details"
	Future  Section = "future"
)

// Primary lists the sidebar sections in display order.
var Primary = []Section{Home, Projects, Team, Research, Discussion}

// Extended lists the sections outside the sidebar.
var Extended = []Section{Feed, Details, Future}

// QuickLinks are the sections linked from the footer.
var QuickLinks = []Section{Home, Projects, Team, Research}

var labels = map[Section]string{
	Discussion: "Forum",
	Feed:       "Project Feed",
	Details:    "Project Details",
	Future:     "Future Outlook",
}

var titler = cases.Title(language.English)

// Label is the human-readable name of s.
func (s Section) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return titler.String(string(s))
}

// Known reports whether s is one of the defined sections.
func (s Section) Known() bool {
	for _, k := range Primary {
		if s == k {
			return true
		}
	}
	for _, k := range Extended {
		if s == k {
			return true
		}
	}
	return false
}

// Resolve maps an identifier to a section, falling back to Home. Matching
// is exact; callers that accept user input normalize it first.
func Resolve(id string) Section {
	s := Section(id)
	if s.Known() {
		return s
	}
	return Home
}

// Controller holds the active section.
type Controller struct {
	active Section
}

// NewController starts at the resolved start section.
func NewController(start string) *Controller {
	return &Controller{active: Resolve(start)}
}

// Active returns the current section.
func (c *Controller) Active() Section { return c.active }

// Select makes id the active section and reports whether the section
// changed. Unknown ids select Home.
func (c *Controller) Select(id string) (Section, bool) {
	next := Resolve(id)
	changed := next != c.active
	c.active = next
	return next, changed
}

// Next cycles forward through the sidebar sections. From an extended
// section it goes to the first sidebar entry.
func (c *Controller) Next() Section {
	i := indexOf(c.active)
	s, _ := c.Select(string(Primary[(i+1)%len(Primary)]))
	return s
}

// Prev cycles backward through the sidebar sections.
func (c *Controller) Prev() Section {
	i := indexOf(c.active)
	if i < 0 {
		i = 0
	}
	s, _ := c.Select(string(Primary[(i-1+len(Primary))%len(Primary)]))
	return s
}

func indexOf(s Section) int {
	for i, p := range Primary {
		if p == s {
			return i
		}
	}
	return -1
}

// Lookup resolves a free-text palette query to a section. Exact ids win;
// otherwise the closest fuzzy match over ids and labels is returned.
func Lookup(query string) (Section, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	if s := Section(strings.ToLower(q)); s.Known() {
		return s, true
	}

	all := append(append([]Section{}, Primary...), Extended...)
	targets := make([]string, 0, 2*len(all))
	owners := make([]Section, 0, 2*len(all))
	for _, s := range all {
		targets = append(targets, string(s), s.Label())
		owners = append(owners, s, s)
	}

	ranks := fuzzy.RankFindFold(q, targets)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return owners[ranks[0].OriginalIndex], true
}
