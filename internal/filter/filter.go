// Package filter implements the list predicates shared by the section
// views. Filters are linear scans that keep the input order.
package filter

import (
	"strings"

	"github.com/nhle/deepdetect/internal/model"
)

// All is the filter key that matches every item.
const All = "all"

// Apply returns the items for which keep is true, in their original order.
// The result is never nil.
func Apply[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// ByKey builds a predicate that matches when key is All or equals the
// item's field.
func ByKey[T any, K ~string](key string, field func(T) K) func(T) bool {
	return func(it T) bool {
		return key == All || string(field(it)) == key
	}
}

// Category filters items on a string-like field.
func Category[T any, K ~string](items []T, key string, field func(T) K) []T {
	return Apply(items, ByKey(key, field))
}

// TeamQuery is the combined search box and role filter of the team view.
type TeamQuery struct {
	Search string
	Role   string
}

// Match reports whether m satisfies both the search term and the role
// filter. The search is a case-insensitive substring test on name, role
// and specialization; the role filter matches when the lower-cased role
// contains it.
func (q TeamQuery) Match(m model.TeamMember) bool {
	return q.matchesSearch(m) && q.matchesRole(m)
}

func (q TeamQuery) matchesSearch(m model.TeamMember) bool {
	term := strings.ToLower(q.Search)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Role), term) ||
		strings.Contains(strings.ToLower(m.Specialization), term)
}

func (q TeamQuery) matchesRole(m model.TeamMember) bool {
	if q.Role == "" || q.Role == All {
		return true
	}
	return strings.Contains(strings.ToLower(m.Role), strings.ToLower(q.Role))
}

// Team returns the members matching q, in roster order.
func Team(members []model.TeamMember, q TeamQuery) []model.TeamMember {
	return Apply(members, q.Match)
}
