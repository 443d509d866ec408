//go:build test

package mem

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var longPatterns = [][]string{
	{"a", "ab", "abc", "abcd", "abcde"},
	{"h", "he", "hel", "hell", "hello"},
	{"p", "pr", "pro", "prog", "progr", "progra", "program"},
	{"i", "in", "int", "inte", "inter", "intern", "interna", "internat", "internati", "internatio", "internation", "internationa", "international"},
	{"d", "de", "dev", "deve", "devel", "develo", "develop", "developm", "developme", "developmen", "development"},
}

func words(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("w%06d", i))
	}
	return out
}

// TestChurnReturnsMemory inserts and removes the same batch over and over.
// Pruning must bring the trie back to a bare root every cycle.
func TestChurnReturnsMemory(t *testing.T) {
	batches := []int{100, 1000, 10000}
	for _, n := range batches {
		t.Run(fmt.Sprintf("words_%d", n), func(t *testing.T) {
			runChurnTest(t, words(n), 20)
		})
	}
}

func runChurnTest(t *testing.T, batch []string, cycles int) {
	d := trie.New()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)

	for cycle := 0; cycle < cycles; cycle++ {
		for _, w := range batch {
			d.Insert(w)
		}
		for _, w := range batch {
			d.Remove(w)
		}
		if nodes := d.NodeCount(); nodes != 1 {
			t.Fatalf("cycle %d: %d nodes left after removing everything", cycle, nodes)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.HeapAlloc) - int64(baseline.HeapAlloc)
	t.Logf("batch=%d cycles=%d heap_delta=%d bytes", len(batch), cycles, memDelta)

	if memDelta > 1024*1024 {
		t.Errorf("heap grew by %d bytes after churn", memDelta)
	}
	runtime.KeepAlive(d)
}

// TestSearchAllocations keeps PrefixSearch allocation proportional to the result.
func TestSearchAllocations(t *testing.T) {
	d := trie.New()
	for _, pattern := range longPatterns {
		for _, w := range pattern {
			d.Insert(w)
		}
	}

	for _, pattern := range longPatterns {
		prefix := pattern[0]
		allocs := testing.AllocsPerRun(200, func() {
			_ = d.PrefixSearch(prefix, 10)
		})
		t.Logf("prefix=%q allocs_per_search=%.1f", prefix, allocs)
		if allocs > 200 {
			t.Errorf("prefix %q: %.1f allocations per search", prefix, allocs)
		}
	}
}
