package trie

import (
	"github.com/charmbracelet/log"
)

type options struct {
	strict bool
	logger *log.Logger
}

// Option configures a Dictionary.
type Option func(*options)

// WithStrictCounting only bumps the counts along the path when the word was
// not already stored. Without it, inserting an existing word again inflates
// every count on its path by one.
func WithStrictCounting() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Dictionary is a word set over a counting trie.
// It is not safe for concurrent mutation.
type Dictionary struct {
	root *Node
	opts options
}

// New returns an empty Dictionary.
func New(opts ...Option) *Dictionary {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dictionary{
		root: newNode(),
		opts: o,
	}
}

// Root exposes the root node for read-only inspection.
func (d *Dictionary) Root() *Node {
	return d.root
}

// Insert adds word, creating missing nodes along its path.
func (d *Dictionary) Insert(word string) {
	symbols := []rune(word)
	path := make([]*Node, 0, len(symbols)+1)
	path = append(path, d.root)

	current := d.root
	for _, r := range symbols {
		next := current.Child(r)
		if next == nil {
			next = newNode()
			if err := current.addChild(r, next); err != nil {
				d.opts.logger.Errorf("insert %q: %v", word, err)
				return
			}
		}
		current = next
		path = append(path, current)
	}

	if d.opts.strict && current.IsTerminal() {
		return
	}
	current.setTerminal(true)
	for _, n := range path {
		n.increment()
	}
}

// Remove deletes word if it is stored. Nodes left with no words below them
// are detached from their parents.
func (d *Dictionary) Remove(word string) {
	symbols := []rune(word)
	path, ok := d.walk(symbols)
	if !ok {
		return
	}

	end := path[len(path)-1]
	if !end.IsTerminal() {
		return
	}
	end.setTerminal(false)
	for _, n := range path {
		if !n.decrement() {
			d.opts.logger.Warnf("remove %q: count already zero", word)
		}
	}
	d.prune(symbols, path)
}

// prune walks back from the deepest node and detaches every node whose
// count dropped to zero. path[i] is reached through symbols[i-1]; the root
// sits at index 0 and is never detached.
func (d *Dictionary) prune(symbols []rune, path []*Node) {
	for i := len(path) - 1; i > 0; i-- {
		if path[i].Count() > 0 {
			return
		}
		path[i-1].removeChild(symbols[i-1])
		d.opts.logger.Debugf("pruned %q", string(symbols[:i]))
	}
}

// Count returns the number of stored words that start with prefix.
// CountAll returns every word in the dictionary.
func (d *Dictionary) Count(prefix string) int {
	if prefix == CountAll {
		return d.root.Count()
	}
	n := d.find(prefix)
	if n == nil {
		return 0
	}
	return n.Count()
}

// Contains reports whether word is a path in the trie, whether or not word
// itself was inserted. Use IsWord for exact membership.
func (d *Dictionary) Contains(word string) bool {
	return d.find(word) != nil
}

// IsWord reports whether word itself is stored.
func (d *Dictionary) IsWord(word string) bool {
	n := d.find(word)
	return n != nil && n.IsTerminal()
}

// Size returns the root count.
func (d *Dictionary) Size() int {
	return d.root.Count()
}

// NodeCount returns the number of reachable nodes, root included.
func (d *Dictionary) NodeCount() int {
	total := 0
	stack := []*Node{d.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		for _, child := range n.children {
			stack = append(stack, child)
		}
	}
	return total
}

// Reset drops every word.
func (d *Dictionary) Reset() {
	d.root = newNode()
}

func (d *Dictionary) find(word string) *Node {
	current := d.root
	for _, r := range word {
		current = current.Child(r)
		if current == nil {
			return nil
		}
	}
	return current
}

// walk returns the nodes from the root to the end of symbols, or false if
// the path breaks.
func (d *Dictionary) walk(symbols []rune) ([]*Node, bool) {
	path := make([]*Node, 0, len(symbols)+1)
	path = append(path, d.root)
	current := d.root
	for _, r := range symbols {
		current = current.Child(r)
		if current == nil {
			return nil, false
		}
		path = append(path, current)
	}
	return path, true
}
