package trie

import (
	"errors"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrChildExists is returned by addChild when the symbol is already taken.
var ErrChildExists = errors.New("trie: child already exists for symbol")

// Node is one prefix in the trie. It owns its children and tracks how many
// words end somewhere in its subtree, itself included.
type Node struct {
	children map[rune]*Node
	terminal bool
	count    int
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Child returns the child reached through r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

func (n *Node) addChild(r rune, child *Node) error {
	if _, ok := n.children[r]; ok {
		return ErrChildExists
	}
	n.children[r] = child
	return nil
}

func (n *Node) removeChild(r rune) {
	delete(n.children, r)
}

// IsTerminal reports whether the path to n spells a stored word.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

func (n *Node) setTerminal(v bool) {
	n.terminal = v
}

// Count is the number of terminal nodes in the subtree rooted at n.
func (n *Node) Count() int {
	return n.count
}

func (n *Node) increment() {
	n.count++
}

// decrement reports false and leaves the count alone when it is already 0.
func (n *Node) decrement() bool {
	if n.count == 0 {
		return false
	}
	n.count--
	return true
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	return len(n.children)
}

// ChildSymbols lists the child symbols in ascending rune order.
// Search results follow this order.
func (n *Node) ChildSymbols() []rune {
	keys := maps.Keys(n.children)
	slices.Sort(keys)
	return keys
}
