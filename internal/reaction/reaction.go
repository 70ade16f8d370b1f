// Package reaction tracks the session's local "likes". Counts shown to the
// user are the content's base count plus one when liked; the base values
// are never written back.
package reaction

// Set is the set of liked ids. The zero value is ready to use.
type Set struct {
	liked map[string]struct{}
}

// Toggle flips membership of id and reports whether it is now liked.
func (s *Set) Toggle(id string) bool {
	if s.liked == nil {
		s.liked = make(map[string]struct{})
	}
	if _, ok := s.liked[id]; ok {
		delete(s.liked, id)
		return false
	}
	s.liked[id] = struct{}{}
	return true
}

// Liked reports whether id is in the set.
func (s *Set) Liked(id string) bool {
	_, ok := s.liked[id]
	return ok
}

// Count returns base, plus one if id is liked.
func (s *Set) Count(id string, base int) int {
	if s.Liked(id) {
		return base + 1
	}
	return base
}

// Len returns the number of liked ids.
func (s *Set) Len() int { return len(s.liked) }
