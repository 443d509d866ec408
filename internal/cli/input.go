// Package cli is a line-oriented REPL over a dictionary for debugging and testing
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/charmbracelet/log"
)

const usage = `commands:
  add <word>        insert a word
  rm <word>         remove a word
  count <prefix|*>  words starting with prefix
  has <word>        is word a path in the dictionary
  word <word>       was word itself inserted
  find <prefix> [n] up to n words starting with prefix
  stats             dictionary size
  help              this text
anything else is treated as "find <input>"`

// InputHandler reads commands from a stream and prints results.
type InputHandler struct {
	dict         trie.Store
	in           io.Reader
	out          *log.Logger
	suggestLimit int
	noFilter     bool
	requestCount int
}

// NewInputHandler builds a handler over stdin/stdout
func NewInputHandler(dict trie.Store, limit int, noFilter bool) *InputHandler {
	return NewInputHandlerWithIO(dict, limit, noFilter, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO builds a handler over arbitrary streams
func NewInputHandlerWithIO(dict trie.Store, limit int, noFilter bool, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		dict:         dict,
		in:           in,
		out:          logger.NewWithWriter(out, ""),
		suggestLimit: limit,
		noFilter:     noFilter,
	}
}

// Start runs the loop until the input ends. EOF is not an error.
func (h *InputHandler) Start() error {
	h.out.Print("wordtrie CLI")
	h.out.Print("type a command or a prefix and press Enter (help for commands, Ctrl+C to exit):")

	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput runs a single command line.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "add":
		if word, ok := h.oneArg(cmd, args); ok {
			h.add(word)
		}
	case "rm":
		if word, ok := h.oneArg(cmd, args); ok {
			h.dict.Remove(word)
			h.out.Printf("removed %q, %s words", word, utils.FormatWithCommas(h.dict.Count(trie.CountAll)))
		}
	case "count":
		if prefix, ok := h.oneArg(cmd, args); ok {
			h.out.Printf("count(%q) = %s", prefix, utils.FormatWithCommas(h.dict.Count(prefix)))
		}
	case "has":
		if word, ok := h.oneArg(cmd, args); ok {
			h.out.Printf("contains(%q) = %v", word, h.dict.Contains(word))
		}
	case "word":
		if word, ok := h.oneArg(cmd, args); ok {
			h.isWord(word)
		}
	case "find":
		h.find(args)
	case "stats":
		h.stats()
	case "help":
		h.out.Print(usage)
	default:
		h.find(fields)
	}
}

func (h *InputHandler) oneArg(cmd string, args []string) (string, bool) {
	if len(args) != 1 {
		h.out.Errorf("%s takes exactly one argument", cmd)
		return "", false
	}
	return args[0], true
}

func (h *InputHandler) add(word string) {
	if !h.noFilter && !utils.IsValidWord(word) {
		h.out.Warnf("Filtered out %q (use -no-filter to allow it)", word)
		return
	}
	h.dict.Insert(word)
	h.out.Printf("added %q, %s words", word, utils.FormatWithCommas(h.dict.Count(trie.CountAll)))
}

func (h *InputHandler) isWord(word string) {
	exact, ok := h.dict.(interface{ IsWord(string) bool })
	if !ok {
		h.out.Errorf("dictionary does not support exact lookups")
		return
	}
	h.out.Printf("word(%q) = %v", word, exact.IsWord(word))
}

func (h *InputHandler) find(args []string) {
	if len(args) == 0 || len(args) > 2 {
		h.out.Errorf("usage: find <prefix> [n]")
		return
	}
	prefix := args[0]
	limit := h.suggestLimit
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			h.out.Errorf("invalid limit: %s", args[1])
			return
		}
		limit = n
	}

	start := time.Now()
	words := h.dict.PrefixSearch(prefix, limit)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	if len(words) == 0 {
		h.out.Warnf("No words found for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("Found %d words for prefix '%s':", len(words), prefix)
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, fmt.Sprintf("\033[38;5;75m%s\033[0m", w))
	}
}

func (h *InputHandler) stats() {
	h.out.Printf("words: %s", utils.FormatWithCommas(h.dict.Count(trie.CountAll)))
	if nodes, ok := h.dict.(interface{ NodeCount() int }); ok {
		h.out.Printf("nodes: %s", utils.FormatWithCommas(nodes.NodeCount()))
	}
	h.out.Printf("commands: %d", h.requestCount)
}
