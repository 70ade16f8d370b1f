// Package content holds the site's bundled static data: the team roster,
// projects, feed announcements and page copy. Everything is decoded once
// from an embedded YAML document and never mutated afterwards.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nhle/deepdetect/internal/model"
)

//go:embed deepdetect.yaml
var bundled []byte

// ErrInvalid is wrapped by every validation failure returned from Parse.
var ErrInvalid = errors.New("invalid content")

// Forum holds the discussion categories and threads.
type Forum struct {
	Categories  []model.ForumCategory `yaml:"categories"`
	Discussions []model.Discussion    `yaml:"discussions"`
}

type document struct {
	Site          model.Site            `yaml:"site"`
	Team          []model.TeamMember    `yaml:"team"`
	Projects      []model.Project       `yaml:"projects"`
	Announcements []model.ProjectUpdate `yaml:"announcements"`
	Research      model.Research        `yaml:"research"`
	Footer        model.Footer          `yaml:"footer"`
	Forum         Forum                 `yaml:"forum"`
	Details       []model.Tab           `yaml:"details"`
	Future        string                `yaml:"future"`
}

// Store is the read-only content collection. The zero value is empty but
// usable.
type Store struct {
	doc        document
	members    map[string]model.TeamMember
	allUpdates []model.AttributedUpdate
	timeline   []model.FeedEntry
	roles      []string
}

// Load decodes the bundled content.
func Load() (*Store, error) {
	return Parse(bundled)
}

// MustLoad is like Load but panics on error. Intended for tests.
func MustLoad() *Store {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes and validates a content document. Unknown keys are
// rejected.
func Parse(data []byte) (*Store, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}

	s := &Store{doc: doc, members: make(map[string]model.TeamMember, len(doc.Team))}
	for _, m := range doc.Team {
		s.members[m.ID] = m
	}
	s.allUpdates = attribute(doc.Projects)
	s.timeline = merge(s.allUpdates, doc.Announcements)
	s.roles = distinctRoles(doc.Team)
	return s, nil
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func validate(doc *document) error {
	members := make(map[string]bool, len(doc.Team))
	for _, m := range doc.Team {
		if m.ID == "" {
			return invalidf("team member %q has no id", m.Name)
		}
		if members[m.ID] {
			return invalidf("duplicate team member id %q", m.ID)
		}
		members[m.ID] = true
	}

	projects := make(map[string]bool, len(doc.Projects))
	for _, p := range doc.Projects {
		if projects[p.ID] {
			return invalidf("duplicate project id %q", p.ID)
		}
		projects[p.ID] = true

		if p.Progress < 0 || p.Progress > 100 {
			return invalidf("project %s: progress %d outside 0..100", p.ID, p.Progress)
		}
		if !p.Status.Valid() {
			return invalidf("project %s: unknown status %q", p.ID, p.Status)
		}
		if !p.Priority.Valid() {
			return invalidf("project %s: unknown priority %q", p.ID, p.Priority)
		}
		if !p.Category.Valid() {
			return invalidf("project %s: unknown category %q", p.ID, p.Category)
		}
		for _, id := range p.Team {
			if !members[id] {
				return invalidf("project %s: team references unknown member %q", p.ID, id)
			}
		}
		for _, u := range p.Updates {
			if !u.Type.Valid() {
				return invalidf("project %s: update %s has unknown type %q", p.ID, u.ID, u.Type)
			}
		}
	}

	for _, u := range doc.Announcements {
		if !u.Type.Valid() {
			return invalidf("announcement %s has unknown type %q", u.ID, u.Type)
		}
	}
	return nil
}

// attribute flattens every project's updates, tags each with its parent
// project, and orders the result newest first. Ties keep content order.
func attribute(projects []model.Project) []model.AttributedUpdate {
	var out []model.AttributedUpdate
	for _, p := range projects {
		for _, u := range p.Updates {
			out = append(out, model.AttributedUpdate{
				ProjectUpdate: u,
				ProjectID:     p.ID,
				ProjectTitle:  p.Title,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

func merge(attributed []model.AttributedUpdate, bare []model.ProjectUpdate) []model.FeedEntry {
	out := make([]model.FeedEntry, 0, len(attributed)+len(bare))
	for _, u := range attributed {
		out = append(out, u)
	}
	for _, u := range bare {
		out = append(out, model.BareUpdate{ProjectUpdate: u})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Post().Date.After(out[j].Post().Date.Time)
	})
	return out
}

func distinctRoles(team []model.TeamMember) []string {
	seen := make(map[string]bool)
	roles := []string{"all"}
	for _, m := range team {
		r := strings.ToLower(m.Role)
		if seen[r] {
			continue
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles
}

// Site returns the landing-page copy.
func (s *Store) Site() model.Site { return s.doc.Site }

// Team returns the roster in content order.
func (s *Store) Team() []model.TeamMember { return s.doc.Team }

// Member looks up a team member by id.
func (s *Store) Member(id string) (model.TeamMember, bool) {
	m, ok := s.members[id]
	return m, ok
}

// Projects returns all projects in content order.
func (s *Store) Projects() []model.Project { return s.doc.Projects }

// ProjectTeam resolves a project's team ids to members, in the project's order.
func (s *Store) ProjectTeam(p model.Project) []model.TeamMember {
	out := make([]model.TeamMember, 0, len(p.Team))
	for _, id := range p.Team {
		if m, ok := s.members[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// AllUpdates returns every project update attributed to its project,
// newest first.
func (s *Store) AllUpdates() []model.AttributedUpdate { return s.allUpdates }

// Timeline returns AllUpdates merged with the standalone announcements,
// newest first.
func (s *Store) Timeline() []model.FeedEntry { return s.timeline }

// Roles returns the team role filter options: "all" followed by each
// distinct lower-cased role in roster order.
func (s *Store) Roles() []string { return s.roles }

// Research returns the research page content.
func (s *Store) Research() model.Research { return s.doc.Research }

// Footer returns the footer copy.
func (s *Store) Footer() model.Footer { return s.doc.Footer }

// ForumCategories returns the discussion categories, "all" first.
func (s *Store) ForumCategories() []model.ForumCategory { return s.doc.Forum.Categories }

// Discussions returns the forum threads.
func (s *Store) Discussions() []model.Discussion { return s.doc.Forum.Discussions }

// DetailTabs returns the project-details tabs.
func (s *Store) DetailTabs() []model.Tab { return s.doc.Details }

// Future returns the future-outlook markdown.
func (s *Store) Future() string { return s.doc.Future }
