package detail

// Selection holds at most one selected item. The zero value is empty.
type Selection[T any] struct {
	item   T
	active bool
}

// Select replaces the current selection with v.
func (s *Selection[T]) Select(v T) {
	s.item = v
	s.active = true
}

// Clear empties the selection.
func (s *Selection[T]) Clear() {
	var zero T
	s.item = zero
	s.active = false
}

// Current returns the selected item and whether one is selected.
func (s Selection[T]) Current() (T, bool) {
	return s.item, s.active
}

// Active reports whether an item is selected.
func (s Selection[T]) Active() bool {
	return s.active
}
