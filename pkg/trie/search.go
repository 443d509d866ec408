package trie

// PrefixSearch returns at most limit stored words that start with prefix.
// A node's own word comes before anything below it, and children are visited
// in ascending rune order.
func (d *Dictionary) PrefixSearch(prefix string, limit int) []string {
	results := []string{}
	if limit <= 0 {
		return results
	}
	start := d.find(prefix)
	if start == nil {
		return results
	}

	budget := limit
	buf := []rune(prefix)
	collect(start, buf, &budget, &results)
	return results
}

// collect is a pre-order walk that spends one unit of budget per word found.
// budget belongs to a single PrefixSearch call.
func collect(n *Node, word []rune, budget *int, out *[]string) {
	if n.IsTerminal() {
		*out = append(*out, string(word))
		*budget--
	}
	if *budget <= 0 {
		return
	}
	for _, r := range n.ChildSymbols() {
		collect(n.Child(r), append(word, r), budget, out)
		if *budget <= 0 {
			return
		}
	}
}
