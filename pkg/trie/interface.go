// Package trie is the core dictionary engine: a counting prefix tree with
// insertion, removal, prefix counts and bounded autocomplete search.
package trie

// CountAll is the sentinel prefix that makes Count return the total number of words.
const CountAll = "*"

// Store defines the operations the outer layers (IPC server, CLI) rely on
type Store interface {
	// Insert adds a word. Repeated inserts are accepted.
	Insert(word string)

	// Remove deletes a word and prunes branches no other word uses
	Remove(word string)

	// Count returns how many words start with prefix, or all words for CountAll
	Count(prefix string) int

	// Contains reports whether word is a path in the trie.
	// It does not require word itself to have been inserted.
	Contains(word string) bool

	// PrefixSearch returns up to limit words under prefix in traversal order
	PrefixSearch(prefix string, limit int) []string
}

var _ Store = (*Dictionary)(nil)
