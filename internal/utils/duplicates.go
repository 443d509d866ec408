package utils

// SeenSet remembers which words have already gone by.
type SeenSet struct {
	seen map[string]struct{}
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// First reports true the first time word is passed and false afterwards.
func (s *SeenSet) First(word string) bool {
	if _, ok := s.seen[word]; ok {
		return false
	}
	s.seen[word] = struct{}{}
	return true
}

// Len is the number of distinct words seen.
func (s *SeenSet) Len() int {
	return len(s.seen)
}
