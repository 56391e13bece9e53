package tasktree

// orderedSet keeps unique strings in insertion order
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

// add appends s unless already present and reports whether it was added
func (s *orderedSet) add(v string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// list returns a copy of the items
func (s *orderedSet) list() []string {
	return append([]string(nil), s.items...)
}
